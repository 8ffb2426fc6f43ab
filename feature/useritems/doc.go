// Package useritems is the remote persistence service for grail progress.
//
// Rows live in the user_items table, one per (user, item key). The user is
// taken from the X-User-ID header on every request.
//
//	GET    /user-items           -> {"items": [{id, userId, itemKey, found, foundAt}]}
//	POST   /user-items/set       <- {itemKey, found}
//	POST   /user-items/set-bulk  <- {items: [{itemKey, found?, foundAt?}]}
//	DELETE /user-items/clear
//
// Unlike the client record, the table keeps rows with found false after an
// item is un-marked. Clients collapse them on load.
package useritems
