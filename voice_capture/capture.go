package voice_capture

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gordonklaus/portaudio"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/zenwerk/go-wave"

	"interview-voice-assistant/ring_buffer"
	"interview-voice-assistant/voice_capture/vad"
)

const (
	defaultSampleRate = 16000
	defaultBufferSize = 8196

	// sustained drop below this ratio of the last flux counts as quiet
	fluxRatio = 1.75

	quietTimePeriod = 200 * time.Millisecond
)

type captureImpl struct {
	fileSys      afero.Fs
	sampleRate   int
	bufferSize   int
	audioRunning bool
	logger       *logrus.Logger
}

type Config struct {
	FileSys afero.Fs

	// SampleRate and BufferSize default to 16 kHz mono with 8196-sample
	// frames, which is what the STT engine expects.
	SampleRate int
	BufferSize int

	Logger *logrus.Logger
}

func New(cfg *Config) (Interface, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	if cfg.FileSys == nil {
		return nil, fmt.Errorf("fileSys is nil")
	}

	sampleRate := cfg.SampleRate
	if sampleRate == 0 {
		sampleRate = defaultSampleRate
	}

	bufferSize := cfg.BufferSize
	if bufferSize == 0 {
		bufferSize = defaultBufferSize
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initializing audio: %w", err)
	}

	return &captureImpl{
		fileSys:      cfg.FileSys,
		sampleRate:   sampleRate,
		bufferSize:   bufferSize,
		audioRunning: true,
		logger:       logger,
	}, nil
}

func (c *captureImpl) Close() {
	if c.audioRunning {
		if err := portaudio.Terminate(); err != nil {
			c.logger.WithError(err).Warn("freeing audio")
		}

		c.audioRunning = false
	}
}

func (c *captureImpl) Record(timeout, phraseLimit time.Duration) (string, error) {
	in := make([]int16, c.bufferSize)

	stream, err := portaudio.OpenDefaultStream(1, 0, float64(c.sampleRate), len(in), in)
	if err != nil {
		return "", fmt.Errorf("opening stream: %w", err)
	}

	defer stream.Close()

	if err := stream.Start(); err != nil {
		return "", fmt.Errorf("starting stream: %w", err)
	}

	defer func() {
		if stopErr := stream.Stop(); stopErr != nil {
			c.logger.WithError(stopErr).Warn("stopping stream")
		}
	}()

	waveFilename := "utterance" + strconv.Itoa(int(time.Now().UnixNano())) + ".wav"

	waveFile, err := c.fileSys.Create(waveFilename)
	if err != nil {
		return "", fmt.Errorf("creating wav file: %w", err)
	}

	waveWriter, err := wave.NewWriter(wave.WriterParam{
		Out:           waveFile,
		Channel:       1,
		SampleRate:    c.sampleRate,
		BitsPerSample: 16,
	})
	if err != nil {
		return "", fmt.Errorf("creating wav writer: %w", err)
	}

	var (
		heardSomething bool
		quiet          bool
		quietStart     time.Time
		speechStart    time.Time
		lastFlux       float64
	)

	detector := vad.New(len(in))
	preRoll := ring_buffer.New(c.bufferSize)

	listenStart := time.Now()

	for {
		if err := stream.Read(); err != nil {
			waveWriter.Close()
			c.discard(waveFilename)

			return "", fmt.Errorf("reading stream: %w", err)
		}

		if !heardSomething {
			preRoll.Add(in)

			if timeout > 0 && time.Since(listenStart) > timeout {
				// nothing heard in time; hand control back to the caller
				waveWriter.Close()
				c.discard(waveFilename)

				return "", nil
			}
		} else {
			if _, err := waveWriter.WriteSample16(in); err != nil {
				waveWriter.Close()
				c.discard(waveFilename)

				return "", fmt.Errorf("writing samples: %w", err)
			}

			if phraseLimit > 0 && time.Since(speechStart) > phraseLimit {
				break
			}
		}

		flux := detector.Flux(in)

		if lastFlux == 0 {
			lastFlux = flux
			continue
		}

		if heardSomething {
			if flux*fluxRatio <= lastFlux {
				if !quiet {
					quietStart = time.Now()
				} else if time.Since(quietStart) > quietTimePeriod {
					break
				}

				quiet = true
			} else {
				quiet = false
				lastFlux = flux
			}
		} else {
			if flux >= lastFlux*fluxRatio {
				heardSomething = true
				speechStart = time.Now()

				// prepend the buffered pre-detection audio so the first
				// words are kept
				if _, err := waveWriter.WriteSample16(preRoll.Read()); err != nil {
					waveWriter.Close()
					c.discard(waveFilename)

					return "", fmt.Errorf("writing pre-roll: %w", err)
				}
			}

			lastFlux = flux
		}
	}

	if err := waveWriter.Close(); err != nil {
		return "", fmt.Errorf("closing wav writer: %w", err)
	}

	return waveFilename, nil
}

func (c *captureImpl) discard(filename string) {
	if err := c.fileSys.Remove(filename); err != nil {
		c.logger.WithError(err).WithField("file", filename).Warn("removing scratch wav")
	}
}
