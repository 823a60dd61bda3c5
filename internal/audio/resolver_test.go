package audio

import (
	"errors"
	"testing"

	"github.com/handiism/music-organizer/internal/model"
)

// textAttr mimics a format-specific value wrapper that exposes its payload
// through fmt.Stringer, like ASF unicode attributes do.
type textAttr struct {
	value string
}

func (a textAttr) String() string { return a.value }

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		tags model.TagMap
		want model.Identity
	}{
		{
			name: "id3 frames",
			tags: model.TagMap{"TPE1": "The Beatles", "TALB": "Abbey Road", "TIT2": "Come Together"},
			want: model.Identity{Artist: "The Beatles", Album: "Abbey Road"},
		},
		{
			name: "vorbis comments",
			tags: model.TagMap{"ARTIST": "Boards of Canada", "ALBUM": "Geogaddi"},
			want: model.Identity{Artist: "Boards of Canada", Album: "Geogaddi"},
		},
		{
			name: "mp4 atoms",
			tags: model.TagMap{"©art": "Daft Punk", "©alb": "Discovery"},
			want: model.Identity{Artist: "Daft Punk", Album: "Discovery"},
		},
		{
			name: "author alias",
			tags: model.TagMap{"AUTHOR": "Some Narrator", "Album": "Some Book"},
			want: model.Identity{Artist: "Some Narrator", Album: "Some Book"},
		},
		{
			name: "multi-value uses first element",
			tags: model.TagMap{"artist": []string{"First Artist", "Second Artist"}, "album": []string{"Only Album"}},
			want: model.Identity{Artist: "First Artist", Album: "Only Album"},
		},
		{
			name: "wrapper value normalized",
			tags: model.TagMap{"Artist": textAttr{"Wrapped Artist"}, "Album": textAttr{"Wrapped Album"}},
			want: model.Identity{Artist: "Wrapped Artist", Album: "Wrapped Album"},
		},
		{
			name: "first alias in key order wins",
			tags: model.TagMap{"ARTIST": "From Artist Key", "AUTHOR": "From Author Key", "ALBUM": "X"},
			want: model.Identity{Artist: "From Artist Key", Album: "X"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.tags)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolve_IdentityMissing(t *testing.T) {
	tests := []struct {
		name       string
		tags       model.TagMap
		wantArtist string
		wantAlbum  string
	}{
		{"no tags at all", model.TagMap{}, "", ""},
		{"no alias keys", model.TagMap{"TIT2": "Title", "GENRE": "Rock"}, "", ""},
		{"artist only", model.TagMap{"TPE1": "Lonely Artist"}, "Lonely Artist", ""},
		{"album only", model.TagMap{"TALB": "Orphan Album"}, "", "Orphan Album"},
		{"empty artist value", model.TagMap{"ARTIST": "", "ALBUM": "Album"}, "", "Album"},
		{"unusable wrapper", model.TagMap{"ARTIST": 42, "ALBUM": "Album"}, "", "Album"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.tags)
			if !errors.Is(err, ErrIdentityMissing) {
				t.Fatalf("Resolve() error = %v, want ErrIdentityMissing", err)
			}
			if err.Error() != "Artist or album data not found" {
				t.Errorf("error message = %q", err.Error())
			}
			if got.Artist != tt.wantArtist || got.Album != tt.wantAlbum {
				t.Errorf("partial identity = %+v, want {%q %q}", got, tt.wantArtist, tt.wantAlbum)
			}
		})
	}
}
