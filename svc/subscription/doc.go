// Package subscription links members to sports.
//
// A subscription is identified by its (member, sport) pair. Uniqueness of
// the pair and existence of both sides are enforced by the store's unique
// index and foreign keys at insert time; the service does not pre-check
// them and reports violations as svcerr.ErrValidationFailed.
//
// Relationship queries check the referenced member or sport first, so
// asking for the subscriptions of an unknown member fails with
// svcerr.ErrReferenceNotFound instead of returning an empty list.
//
// Unsubscribing an absent pair is not an error: the returned message says
// there was nothing to delete.
package subscription
