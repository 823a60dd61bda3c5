// Package model defines the core data structures used throughout
// music-organizer.
//
// # TagMap and Identity
//
// TagMap is the flat key→value metadata mapping read from an audio
// container; Identity is the artist/album pair resolved from it:
//
//	tags := model.TagMap{"TPE1": "The Beatles", "TALB": "Abbey Road"}
//	ident := model.Identity{Artist: "The Beatles", Album: "Abbey Road"}
//
// # Plan
//
// Plan is the computed destination for one file:
//
//	plan := model.NewPlan("/music", "The Beatles", "Abbey Road", "song.mp3")
//	if plan.TargetExists() {
//	    // collision: skip, never overwrite
//	}
//
// # RunResult
//
// RunResult collects the deviations of a run. Files that move cleanly add
// no record; failed files land in ErrorFiles and collisions in
// ReplaceSkipFiles, both in processing order:
//
//	result := &model.RunResult{}
//	result.AddSkip(model.SkipFile{FileName: "song.mp3", ...})
//	if result.HasIssues() {
//	    // report to the user
//	}
package model
