package speech_to_text

import (
	"fmt"
	"io"
	"strings"

	"github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
	"github.com/go-audio/wav"
	"github.com/spf13/afero"
)

type sttImpl struct {
	model   whisper.Model
	fileSys afero.Fs
}

type Config struct {
	Model   whisper.Model
	FileSys afero.Fs
}

func New(cfg *Config) (Interface, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	if cfg.Model == nil {
		return nil, fmt.Errorf("model is nil")
	}

	if cfg.FileSys == nil {
		return nil, fmt.Errorf("fileSys is nil")
	}

	return &sttImpl{
		model:   cfg.Model,
		fileSys: cfg.FileSys,
	}, nil
}

func (stt *sttImpl) Transcribe(wavPath string) (string, error) {
	f, err := stt.fileSys.Open(wavPath)
	if err != nil {
		return "", fmt.Errorf("opening wav: %w", err)
	}

	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return "", fmt.Errorf("invalid wav file: %s", wavPath)
	}

	buffer, err := decoder.FullPCMBuffer()
	if err != nil {
		return "", fmt.Errorf("decoding wav: %w", err)
	}

	context, err := stt.model.NewContext()
	if err != nil {
		return "", fmt.Errorf("creating whisper context: %w", err)
	}

	data := buffer.AsFloat32Buffer().Data

	var cb whisper.SegmentCallback

	if err := context.Process(data, cb); err != nil {
		return "", fmt.Errorf("running model: %w", err)
	}

	texts, err := collectSegments(context)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(strings.Join(texts, " ")), nil
}

// collectSegments drains the context, dropping bracketed non-speech
// annotations and repeated hallucinated segments.
func collectSegments(context whisper.Context) ([]string, error) {
	seenText := make(map[string]bool)

	texts := make([]string, 0)

	for {
		segment, err := context.NextSegment()
		if err == io.EOF {
			return texts, nil
		} else if err != nil {
			return nil, err
		}

		text := strings.TrimSpace(segment.Text)
		if text == "" {
			continue
		}

		if text[0] == '(' || text[0] == '[' ||
			text[len(text)-1] == ')' || text[len(text)-1] == ']' {
			continue
		}

		if seenText[text] {
			continue
		}

		seenText[text] = true

		texts = append(texts, text)
	}
}
