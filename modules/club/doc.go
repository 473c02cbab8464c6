// Package club is the HTTP module of the clubhouse API. It exposes the
// member directory, the sport catalog and subscriptions as JSON resources
// on a chi router, plus liveness and readiness probes.
//
//	r := club.Router(club.RouterOptions{
//		Members:       club.NewMembers(memberSvc, errHandler),
//		Sports:        club.NewSports(sportSvc, errHandler),
//		Subscriptions: club.NewSubscriptions(subscriptionSvc, errHandler),
//		Probes:        []httpserver.Probe{{Name: "postgres", Check: pg.Healthcheck(pool)}},
//		Logger:        log,
//	})
package club
