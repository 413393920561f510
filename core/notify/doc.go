// Package notify carries post-commit change notifications.
//
// After a batch commits, the trusted write path hands the set of changed
// (kind, key) references to a Notifier. Downstream caches use them to invalidate
// exactly what changed. Notification is best effort: a failing notifier is logged
// by the caller and never fails the write.
package notify
