package voice_capture

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"interview-voice-assistant/speech_to_text"
)

// MicTranscriber couples microphone capture with the STT engine, satisfying
// the listening loop's Transcriber contract.
type MicTranscriber struct {
	capture   Interface
	sttEngine speech_to_text.Interface
	fileSys   afero.Fs
	logger    *logrus.Logger
}

type TranscriberConfig struct {
	Capture   Interface
	STTEngine speech_to_text.Interface
	FileSys   afero.Fs
	Logger    *logrus.Logger
}

func NewTranscriber(cfg *TranscriberConfig) (*MicTranscriber, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	if cfg.Capture == nil {
		return nil, fmt.Errorf("capture is nil")
	}

	if cfg.STTEngine == nil {
		return nil, fmt.Errorf("sttEngine is nil")
	}

	if cfg.FileSys == nil {
		return nil, fmt.Errorf("fileSys is nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}

	return &MicTranscriber{
		capture:   cfg.Capture,
		sttEngine: cfg.STTEngine,
		fileSys:   cfg.FileSys,
		logger:    logger,
	}, nil
}

// Transcribe records one utterance and runs it through the model. The
// scratch wav file only lives for the duration of the call.
func (m *MicTranscriber) Transcribe(timeout, phraseLimit time.Duration) (string, error) {
	wavPath, err := m.capture.Record(timeout, phraseLimit)
	if err != nil {
		return "", err
	}

	if wavPath == "" {
		return "", nil
	}

	defer func() {
		if removeErr := m.fileSys.Remove(wavPath); removeErr != nil {
			m.logger.WithError(removeErr).WithField("file", wavPath).Warn("removing scratch wav")
		}
	}()

	return m.sttEngine.Transcribe(wavPath)
}
