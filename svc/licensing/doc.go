// Package licensing embeds the license rule engine in a process-local service.
//
// The service owns what the rule engine leaves to its caller: customer
// identity, input validation, password hashing and serialization of
// mutations. Each customer has its own lock, so concurrent calls for the same
// customer apply one at a time while different customers proceed in
// parallel. State is kept in memory for the lifetime of the process.
//
//	svc := licensing.NewService(
//	    licensing.WithLogger(log),
//	    licensing.WithBcryptCost(cfg.BcryptCost),
//	)
//
//	id, err := svc.Register(ctx, licensing.RegisterInput{
//	    Name: "Jane", Email: "jane@example.com", Password: pw, Plan: "Single",
//	})
//	if err := svc.AddWebsite(ctx, id, "example.com"); err != nil {
//	    code := licensing.ErrorCode(err) // "website_limit_reached", ...
//	}
//
// ErrorCode maps every failure, including the license package sentinels, to a
// stable string a transport layer can return to clients.
//
// RunScenario replays a Scenario (see ParseScenario for the YAML form) and
// returns per-step outcomes plus the final state of every customer.
package licensing
