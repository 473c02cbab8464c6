// Package member implements the member directory: creating, listing,
// reading, patching and removing club members.
//
// Persistence goes through a datastore.Gateway[Member]; every failure is
// returned as a *svcerr.Error. The directory is not cached.
//
//	svc := member.NewService(datastore.NewPostgres(db, member.Table),
//		member.WithLogger(log))
//	m, err := svc.Create(ctx, member.CreateInput{FirstName: "Ada", LastName: "Lovelace", Gender: member.GenderFemale})
package member
