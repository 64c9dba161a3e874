package assets

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAssetPath(t *testing.T) {
	tests := []struct {
		src     string
		want    string
		wantErr bool
	}{
		{src: "/music.mp3", want: "music.mp3"},
		{src: "music.mp3", want: "music.mp3"},
		{src: "/audio/theme.ogg", want: "audio/theme.ogg"},
		{src: "/../../etc/music.mp3", want: "etc/music.mp3"},
		{src: "", wantErr: true},
		{src: "/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := ResolveAssetPath(tt.src)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAudioLoader_PreloadCachesFile(t *testing.T) {
	files := fstest.MapFS{
		"music.mp3": &fstest.MapFile{Data: []byte("ID3")},
	}
	l := NewAudioLoader(nil, files)

	require.NoError(t, l.Preload("/music.mp3"))
	assert.Equal(t, []byte("ID3"), l.cache["music.mp3"])

	// Served from cache even after the file disappears.
	delete(files, "music.mp3")
	require.NoError(t, l.Preload("/music.mp3"))
}

func TestAudioLoader_MissingFile(t *testing.T) {
	l := NewAudioLoader(nil, fstest.MapFS{})

	_, err := l.LoadMusic("/music.mp3")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestAudioLoader_UnsupportedFormat(t *testing.T) {
	files := fstest.MapFS{
		"music.flac": &fstest.MapFile{Data: []byte("fLaC")},
	}
	l := NewAudioLoader(nil, files)

	_, err := l.LoadMusic("/music.flac")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Empty(t, l.cache)
}
