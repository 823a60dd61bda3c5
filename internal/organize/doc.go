// Package organize implements the music organization engine.
//
// # Pipeline
//
// One run flows strictly forward per file:
//
//  1. Discover candidate audio files under the source tree (internal/scan)
//  2. Extract a flat tag mapping from the container (internal/audio)
//  3. Resolve the artist/album identity from tag aliases
//  4. Sanitize the artist/album directory segments
//  5. Plan the destination path and detect collisions (internal/model)
//  6. Copy the file with metadata preservation and verification
//  7. Bucket the outcome: moved, skipped-existing, or errored
//
// # Events
//
// A run reports through an ordered event stream that the caller consumes
// asynchronously:
//
//	events := make(chan organize.Event)
//	org := organize.New(settings, logger)
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(func() error { return org.Run(ctx, events) })
//
//	for ev := range events {
//	    switch ev := ev.(type) {
//	    case organize.CountEvent:    // total songs found
//	    case organize.ProgressEvent: // running percentage
//	    case organize.NoticeEvent:   // e.g. empty source
//	    case organize.DoneEvent:     // final RunResult
//	    }
//	}
//	err := g.Wait()
//
// # Failure Model
//
// Every per-file failure — unreadable container, missing artist/album tags,
// copy errors — is caught at the file boundary and becomes an error record
// in the final RunResult; a collision routes to the skip list and is never
// overwritten. Nothing short of an unreadable source root aborts a run.
package organize
