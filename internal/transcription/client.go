// Transcript fetch client for the external transcription provider. This is
// the I/O edge of the service: the analysis core only ever sees the
// transcript string it returns.
package transcription

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"call-insights-go/internal/logger"
)

var httpClient = &http.Client{
	Timeout: 12 * time.Second,
}

type publishResponse struct {
	Code int    `json:"code"`
	Data struct {
		MediaID       string `json:"media_id"`
		Status        string `json:"status"`
		TranscriptURL string `json:"transcript_url"`
	} `json:"data"`
	Reason string `json:"reason,omitempty"`
}

type statusResponse struct {
	Code int    `json:"code"`
	Data struct {
		Status        string `json:"status"` // Success, Queued, Processing, Failed
		TranscriptURL string `json:"transcript_url"`
	} `json:"data"`
	Reason string `json:"reason,omitempty"`
}

// GetTranscript publishes the audio URL to the provider, polls until the
// transcription completes and downloads the resulting text.
func GetTranscript(audioURL string) (string, error) {
	log := logger.New().WithField("component", "transcription")

	host := os.Getenv("TRANSCRIBE_URL")
	if host == "" {
		return "", errors.New("TRANSCRIBE_URL not set")
	}

	log.WithField("audio_url", audioURL).Info("starting transcription")

	mediaID, existingURL, err := publishAudio(host, audioURL, log)
	if err != nil {
		return "", err
	}
	if existingURL != "" {
		log.WithField("transcript_url", existingURL).Info("transcription already exists")
		return downloadText(existingURL)
	}

	finalURL, err := pollUntilDone(host, mediaID, log)
	if err != nil {
		return "", err
	}

	log.WithField("transcript_url", finalURL).Info("transcription completed")
	return downloadText(finalURL)
}

func publishAudio(host, audioURL string, log *logrus.Entry) (string, string, error) {
	endpoint := fmt.Sprintf("%s/transcribe?audio_url=%s", host, url.QueryEscape(audioURL))

	req, err := http.NewRequest("POST", endpoint, nil)
	if err != nil {
		return "", "", err
	}

	var resp publishResponse
	if err := doJSONRequest(req, &resp); err != nil {
		log.WithError(err).Error("transcribe publish failed")
		return "", "", err
	}
	if resp.Code != 200 {
		return "", "", fmt.Errorf("transcribe publish error: code=%d reason=%s", resp.Code, resp.Reason)
	}

	if resp.Data.TranscriptURL != "" && resp.Data.Status == "Success" {
		return "", resp.Data.TranscriptURL, nil
	}
	return resp.Data.MediaID, "", nil
}

func pollUntilDone(host, mediaID string, log *logrus.Entry) (string, error) {
	endpoint := fmt.Sprintf("%s/getstatus?media_id=%s", host, url.QueryEscape(mediaID))

	// poll up to ~60 seconds
	for i := 0; i < 40; i++ {
		time.Sleep(1500 * time.Millisecond)

		req, _ := http.NewRequest("GET", endpoint, nil)
		var s statusResponse
		if err := doJSONRequest(req, &s); err != nil {
			log.WithError(err).Warn("polling failed")
			continue
		}

		log.WithFields(logrus.Fields{"media_id": mediaID, "status": s.Data.Status}).Debug("polling transcription")

		switch s.Data.Status {
		case "Success":
			return s.Data.TranscriptURL, nil
		case "Queued", "Processing":
			continue
		case "Failed":
			return "", fmt.Errorf("transcription failed: %s", s.Reason)
		}
	}
	return "", errors.New("timeout: transcription did not complete")
}

// doJSONRequest runs the request with exponential backoff on transport and
// 5xx failures and decodes the JSON body into target.
func doJSONRequest(req *http.Request, target interface{}) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 12 * time.Second

	var lastErr error
	operation := func() error {
		resp, err := httpClient.Do(req)
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error: %s", body)
			return lastErr
		}
		if err := json.Unmarshal(body, target); err != nil {
			lastErr = fmt.Errorf("json decode error: %v body=%s", err, string(body))
			return lastErr
		}
		return nil
	}

	if err := backoff.Retry(operation, bo); err != nil {
		return lastErr
	}
	return nil
}

func downloadText(u string) (string, error) {
	resp, err := httpClient.Get(u)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("failed to download transcript: %s", b)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
