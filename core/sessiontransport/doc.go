// Package sessiontransport provides the cookie boundaries a session is loaded
// from and saved to.
//
//	// request/response pair
//	w = sessiontransport.TrackWrites(w)
//	sess, err := session.Load(ctx, sessiontransport.FromHTTP(w, r), cfg)
//
//	// raw header pair
//	t := sessiontransport.FromHeaders(r.Header, w.Header())
//
//	// get/set cookie store
//	store := sessiontransport.NewMemoryStore()
//	sess, err = session.Load(ctx, sessiontransport.FromStore(store), cfg)
//
// Every transport serializes and validates cookies the same way, so a session
// saved through one reads back identically through another. FromHTTP appends
// Set-Cookie headers, keeping any already present, and returns
// session.ErrHeadersSent when the writer reports the response as written.
package sessiontransport
