package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"interview-voice-assistant/assistant"
	"interview-voice-assistant/clients/question_gen"
	cfg "interview-voice-assistant/config"
	"interview-voice-assistant/interview"
	"interview-voice-assistant/listener"
	"interview-voice-assistant/speech_synthesis"
	"interview-voice-assistant/speech_to_text"
	"interview-voice-assistant/voice_capture"
)

func main() {
	modelFlag := flag.String("m", "", "model file for whisper")
	configFlag := flag.String("config", "", "path to yaml config (optional)")

	flag.Parse()

	logger := logrus.New()

	conf := cfg.Default()
	if *configFlag != "" {
		loaded, err := cfg.Load(*configFlag)
		if err != nil {
			logger.Fatalf("error loading config: %v", err)
		}

		conf = loaded
	}

	if level, err := logrus.ParseLevel(conf.Assistant.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	if *modelFlag == "" {
		logger.Fatalf("error: model file not specified")
	}

	model, err := whisper.New(*modelFlag)
	if err != nil {
		logger.Fatalf("error loading model: %v", err)
	}

	defer model.Close()

	fileSys := afero.NewOsFs()

	sttEngine, err := speech_to_text.New(&speech_to_text.Config{
		Model:   model,
		FileSys: fileSys,
	})
	if err != nil {
		logger.Fatalf("error with speech_to_text.New: %v", err)
	}

	capture, err := voice_capture.New(&voice_capture.Config{
		FileSys:    fileSys,
		SampleRate: conf.Audio.SampleRate,
		BufferSize: conf.Audio.BufferSize,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatalf("error with voice_capture.New: %v", err)
	}

	defer capture.Close()

	transcriber, err := voice_capture.NewTranscriber(&voice_capture.TranscriberConfig{
		Capture:   capture,
		STTEngine: sttEngine,
		FileSys:   fileSys,
		Logger:    logger,
	})
	if err != nil {
		logger.Fatalf("error with voice_capture.NewTranscriber: %v", err)
	}

	var generator question_gen.API
	if conf.Services.QuestionGen.URL != "" {
		generator, err = question_gen.NewClient(&question_gen.Config{
			ApiHost: conf.Services.QuestionGen.URL,
			Logger:  logger,
		})
		if err != nil {
			logger.Fatalf("error with question_gen.NewClient: %v", err)
		}
	}

	session, err := interview.New(&interview.Config{
		Role:      conf.Assistant.Role,
		Generator: generator,
		Logger:    logger,
	})
	if err != nil {
		logger.Fatalf("error with interview.New: %v", err)
	}

	synthesizer, err := speech_synthesis.New(&speech_synthesis.Config{
		Command: conf.TTS.Command,
		Args:    conf.TTS.Args,
		Logger:  logger,
	})
	if err != nil {
		logger.Fatalf("error with speech_synthesis.New: %v", err)
	}

	defer synthesizer.Close()

	pipeline, err := assistant.New(&assistant.Config{
		Session:     session,
		Synthesizer: synthesizer,
		Logger:      logger,
	})
	if err != nil {
		logger.Fatalf("error building pipeline: %v", err)
	}

	loop, err := listener.New(&listener.Config{
		Transcriber:   transcriber,
		Pipeline:      pipeline,
		ListenTimeout: cfg.DurSeconds(conf.Listen.TimeoutSeconds),
		PhraseLimit:   cfg.DurSeconds(conf.Listen.PhraseLimitSeconds),
		RetryDelay:    cfg.DurSeconds(conf.Listen.RetryDelaySeconds),
		Logger:        logger,
	})
	if err != nil {
		logger.Fatalf("error with listener.New: %v", err)
	}

	if err := loop.Start(); err != nil {
		logger.Fatalf("error starting listener: %v", err)
	}

	defer loop.Stop()

	logger.Info("listening, say 'help' for available commands")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case result := <-loop.Results():
			logger.WithFields(logrus.Fields{
				"command":    result.Command.Label,
				"confidence": result.Command.Confidence,
			}).Info(result.Response)
		case <-interrupt:
			logger.Info("shutting down")

			return
		}
	}
}
