// Command prana screens a breathing recording and prints the report.
//
//	prana -file recording.wav [-rate 16000] [-json] [-debug]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Pranavprog/PRANA/logging"
	"github.com/Pranavprog/PRANA/screening"
	"github.com/Pranavprog/PRANA/screening/features"
	"github.com/Pranavprog/PRANA/transcode"
)

func main() {
	file := flag.String("file", "", "path to the recording to screen")
	rate := flag.Int("rate", 16000, "target sample rate for decoding (Hz)")
	jsonOut := flag.Bool("json", false, "print the full report as JSON")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	// Optional overrides (FFmpeg paths, log level) from a local .env
	_ = godotenv.Load()

	if *debug {
		logging.SetLevel(logging.DebugLevel)
	} else if level := os.Getenv("PRANA_LOG_LEVEL"); level != "" {
		logging.SetLevel(logging.ParseLevel(level))
	}

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	decoderCfg := transcode.DefaultDecoderConfig()
	decoderCfg.TargetSampleRate = *rate
	if path := os.Getenv("PRANA_FFMPEG_PATH"); path != "" {
		decoderCfg.FFmpegPath = path
	}
	if path := os.Getenv("PRANA_FFPROBE_PATH"); path != "" {
		decoderCfg.FFprobePath = path
	}

	decoder := transcode.NewDecoder(decoderCfg)
	audio, err := decoder.DecodeFile(context.Background(), *file)
	if err != nil {
		logging.Fatal(err, "failed to decode recording")
	}

	screener := screening.NewScreener(nil)
	report, err := screener.Analyze(audio.PCM, audio.SampleRate)
	if err != nil {
		logging.Fatal(err, "analysis failed")
	}

	if *jsonOut {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			logging.Fatal(err, "failed to encode report")
		}
		return
	}

	printSummary(report)
}

func printSummary(report *screening.Report) {
	c := report.Classification
	fmt.Printf("Status:        %s\n", c.Status)
	if c.BreathingType != "" {
		fmt.Printf("Breathing:     %s\n", c.BreathingType)
	}
	if rate, ok := report.Features.Values[features.KeyBreathingRate].(float64); ok {
		fmt.Printf("Rate:          %.1f breaths/min\n", rate)
	}
	fmt.Printf("Stability:     %.0f/100\n", c.StabilityScore)
	fmt.Printf("Lung comfort:  %s\n", c.LungComfort)
	fmt.Printf("Confidence:    %d%%\n", c.Confidence)

	if len(report.Abnormalities) > 0 {
		fmt.Println("Findings (most severe first):")
		for _, event := range report.Abnormalities {
			fmt.Printf("  - [%s] %s (%d%%)\n", event.Type, event.Description, event.Percentage)
		}
	}
}
