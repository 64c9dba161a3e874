package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ErrUnsupportedFormat is returned for audio files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// decodedStream is what every ebiten decoder returns
type decodedStream interface {
	io.ReadSeeker
	Length() int64
}

// AudioLoader handles loading of music assets from a static asset tree
type AudioLoader struct {
	files   fs.FS
	cache   map[string][]byte // Raw file bytes, read once per path
	context *audio.Context
}

// NewAudioLoader creates a loader reading from files. Paths passed to it are
// URL-style ("/music.mp3") and resolved relative to the root of files.
func NewAudioLoader(ctx *audio.Context, files fs.FS) *AudioLoader {
	return &AudioLoader{
		files:   files,
		cache:   make(map[string][]byte),
		context: ctx,
	}
}

// NewDirAudioLoader creates a loader serving assets from dir on disk.
func NewDirAudioLoader(ctx *audio.Context, dir string) *AudioLoader {
	return NewAudioLoader(ctx, os.DirFS(dir))
}

// ResolveAssetPath turns a served path such as "/music.mp3" into an fs.FS
// path ("music.mp3"). Parent references never climb above the root.
func ResolveAssetPath(src string) (string, error) {
	cleaned := strings.TrimPrefix(path.Clean("/"+src), "/")
	if cleaned == "" || !fs.ValidPath(cleaned) {
		return "", fmt.Errorf("invalid asset path %q", src)
	}
	return cleaned, nil
}

// Preload reads the file at src into the cache without decoding it.
// Call this at startup so the first Start does not hit the disk.
func (l *AudioLoader) Preload(src string) error {
	_, _, err := l.read(src)
	return err
}

// LoadMusic returns a streaming player for music with looping.
func (l *AudioLoader) LoadMusic(src string) (*audio.Player, error) {
	name, data, err := l.read(src)
	if err != nil {
		return nil, err
	}

	stream, err := l.decode(name, data)
	if err != nil {
		return nil, err
	}

	// Create infinite loop for music
	loop := audio.NewInfiniteLoop(stream, stream.Length())

	player, err := l.context.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create player for %s: %w", name, err)
	}
	return player, nil
}

func (l *AudioLoader) read(src string) (string, []byte, error) {
	name, err := ResolveAssetPath(src)
	if err != nil {
		return "", nil, err
	}
	if _, err := formatOf(name); err != nil {
		return "", nil, err
	}

	// Already cached
	if data, ok := l.cache[name]; ok {
		return name, data, nil
	}

	data, err := fs.ReadFile(l.files, name)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read music file %s: %w", name, err)
	}
	l.cache[name] = data
	return name, data, nil
}

// decode picks a decoder based on file extension
func (l *AudioLoader) decode(name string, data []byte) (decodedStream, error) {
	format, err := formatOf(name)
	if err != nil {
		return nil, err
	}

	sampleRate := l.context.SampleRate()
	switch format {
	case ".mp3":
		stream, err := mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode mp3 %s: %w", name, err)
		}
		return stream, nil

	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", name, err)
		}
		return stream, nil

	default:
		stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", name, err)
		}
		return stream, nil
	}
}

func formatOf(name string) (string, error) {
	ext := strings.ToLower(path.Ext(name))
	switch ext {
	case ".mp3", ".ogg", ".wav":
		return ext, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}
