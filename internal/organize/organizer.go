package organize

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/handiism/music-organizer/internal/audio"
	"github.com/handiism/music-organizer/internal/config"
	ioutils "github.com/handiism/music-organizer/internal/io"
	"github.com/handiism/music-organizer/internal/model"
	"github.com/handiism/music-organizer/internal/scan"
)

// ExistsMessage is the reason recorded for collision skips.
const ExistsMessage = "File already exists in the destination folder"

// EmptySourceNotice is the message emitted when discovery finds no songs.
const EmptySourceNotice = "No songs were found in the selected folder."

// Organizer moves music files into a destination_root/artist/album tree
// derived from their embedded metadata.
//
// A run owns all of its working state and communicates exclusively through
// the event channel passed to Run; callers treat received values as
// read-only snapshots.
type Organizer struct {
	settings  *config.Settings
	extractor *audio.Extractor
	logger    *slog.Logger
}

// New creates an Organizer for the given settings. A nil logger disables
// engine logging.
func New(settings *config.Settings, logger *slog.Logger) *Organizer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Organizer{
		settings:  settings,
		extractor: audio.NewExtractor(),
		logger:    logger.With("component", "organizer"),
	}
}

// Run executes one organization pass and closes events before returning.
//
// The event order is fixed: one CountEvent, then a single NoticeEvent for
// an empty source, or otherwise one ProgressEvent per counted file and a
// terminal DoneEvent. Per-file failures are converted into error records
// and never abort the run; only a failed discovery walk (or context
// cancellation) makes Run return an error.
func (o *Organizer) Run(ctx context.Context, events chan<- Event) error {
	defer close(events)

	files, err := scan.Find(o.settings.MusicFolderPath)
	if err != nil {
		return fmt.Errorf("scan music folder: %w", err)
	}
	o.logger.Info("discovery finished", "songs", len(files), "source", o.settings.MusicFolderPath)

	if !o.emit(ctx, events, CountEvent{Total: len(files)}) {
		return ctx.Err()
	}

	if len(files) == 0 {
		o.emit(ctx, events, NoticeEvent{Message: EmptySourceNotice})
		return ctx.Err()
	}

	result := &model.RunResult{}
	counted := 0
	for _, file := range files {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if o.processFile(file, result) {
			counted++
			percent := int(math.Round(float64(counted) / float64(len(files)) * 100))
			if !o.emit(ctx, events, ProgressEvent{Percent: percent}) {
				return ctx.Err()
			}
		}
	}

	o.logger.Info("run finished",
		"processed", counted,
		"errors", len(result.ErrorFiles),
		"skipped", len(result.ReplaceSkipFiles),
	)
	o.emit(ctx, events, DoneEvent{Result: result})
	return ctx.Err()
}

// processFile handles one song end to end and appends any deviation to
// result. It reports whether the file counts toward progress: moved and
// errored files do, collision skips do not.
//
// Tag parsers can panic on malformed containers; a panic must stay inside
// the per-file boundary, so it is recorded as an error for the file.
func (o *Organizer) processFile(file scan.SourceFile, result *model.RunResult) (counted bool) {
	fileName := file.Name()
	defer func() {
		if r := recover(); r != nil {
			o.logger.Warn("panic while processing file", "file", fileName, "panic", r)
			result.AddError(model.ErrorFile{
				FileName: fileName,
				Err:      fmt.Sprintf("unexpected failure: %v", r),
			})
			counted = true
		}
	}()

	tags, err := o.extractor.ReadTags(file.Path)
	if err != nil {
		o.logger.Warn("tag extraction failed", "file", fileName, "error", err)
		result.AddError(model.ErrorFile{FileName: fileName, Tags: tags, Err: err.Error()})
		return true
	}

	ident, err := audio.Resolve(tags)
	if err != nil {
		o.logger.Warn("identity unresolved", "file", fileName,
			"artist", ident.Artist, "album", ident.Album)
		result.AddError(model.ErrorFile{
			FileName:    fileName,
			ArtistFound: ident.Artist,
			AlbumFound:  ident.Album,
			Tags:        tags,
			Err:         err.Error(),
		})
		return true
	}

	artist := ioutils.SanitizeName(ident.Artist, o.settings.RemoveIllegalChars)
	album := ioutils.SanitizeName(ident.Album, o.settings.RemoveIllegalChars)
	plan := model.NewPlan(o.settings.DestinationFolderPath, artist, album, fileName)

	if plan.TargetExists() {
		o.logger.Debug("skipping existing file", "file", fileName, "target", plan.Target)
		result.AddSkip(model.SkipFile{
			FileName:    fileName,
			NewLocation: plan.Dir,
			SourcePath:  file.Path,
			Err:         ExistsMessage,
		})
		return false
	}

	if err := ioutils.EnsureDir(plan.Dir); err != nil {
		result.AddError(o.moveError(fileName, ident, tags, err))
		return true
	}
	if err := ioutils.CopyFile(file.Path, plan.Target); err != nil {
		result.AddError(o.moveError(fileName, ident, tags, err))
		return true
	}

	o.logger.Debug("moved file", "file", fileName, "target", plan.Target)
	return true
}

func (o *Organizer) moveError(fileName string, ident model.Identity, tags model.TagMap, err error) model.ErrorFile {
	o.logger.Warn("move failed", "file", fileName, "error", err)
	return model.ErrorFile{
		FileName:    fileName,
		ArtistFound: ident.Artist,
		AlbumFound:  ident.Album,
		Tags:        tags,
		Err:         err.Error(),
	}
}

// emit delivers ev unless the context is cancelled first.
func (o *Organizer) emit(ctx context.Context, events chan<- Event, ev Event) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
