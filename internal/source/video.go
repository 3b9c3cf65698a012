package source

import (
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// VideoInfo describes the first video stream of a file, as reported by
// ffprobe.
type VideoInfo struct {
	Width    int
	Height   int
	Frames   int
	FPS      float64
	Duration float64 // seconds
}

// ProbeVideo inspects a video file with ffprobe. ffprobe holds the binary
// name or path; an empty string uses "ffprobe" from PATH.
func ProbeVideo(ffprobe, path string) (VideoInfo, error) {
	if ffprobe == "" {
		ffprobe = "ffprobe"
	}
	if _, err := exec.LookPath(ffprobe); err != nil {
		return VideoInfo{}, fmt.Errorf("ffprobe not found in PATH: %w", err)
	}

	cmd := exec.Command(ffprobe,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height,nb_frames,r_frame_rate:format=duration",
		"-of", "default=noprint_wrappers=1",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return VideoInfo{}, fmt.Errorf("ffprobe failed for %s: %w", path, err)
	}

	info, err := parseProbeOutput(string(out))
	if err != nil {
		return VideoInfo{}, fmt.Errorf("cannot parse ffprobe output for %s: %w", path, err)
	}
	return info, nil
}

// parseProbeOutput reads the key=value lines ffprobe emits. nb_frames is
// often "N/A" for stream formats, in which case the frame count is estimated
// from duration and frame rate.
func parseProbeOutput(out string) (VideoInfo, error) {
	var info VideoInfo
	for _, line := range strings.Split(out, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok || value == "N/A" {
			continue
		}
		switch key {
		case "width":
			info.Width, _ = strconv.Atoi(value)
		case "height":
			info.Height, _ = strconv.Atoi(value)
		case "nb_frames":
			info.Frames, _ = strconv.Atoi(value)
		case "duration":
			info.Duration, _ = strconv.ParseFloat(value, 64)
		case "r_frame_rate":
			// Reported as a fraction like "30000/1001".
			if num, den, ok := strings.Cut(value, "/"); ok {
				n, _ := strconv.ParseFloat(num, 64)
				d, _ := strconv.ParseFloat(den, 64)
				if d > 0 {
					info.FPS = n / d
				}
			}
		}
	}

	if info.Width <= 0 || info.Height <= 0 {
		return info, fmt.Errorf("no video stream dimensions found")
	}
	if info.Frames == 0 && info.Duration > 0 && info.FPS > 0 {
		info.Frames = int(math.Round(info.Duration * info.FPS))
	}
	return info, nil
}

// ExtractFrames pulls count frames from the video, evenly spaced from the
// start, into outDir as frame_NNN.jpg files, and returns them as a Set in
// timestamp order. ffmpeg holds the binary name or path; an empty string
// uses "ffmpeg" from PATH.
func ExtractFrames(ffmpeg, path string, info VideoInfo, count int, outDir string) (*Set, error) {
	if count < 1 {
		return nil, fmt.Errorf("frame count must be positive, got %d", count)
	}
	if info.Duration <= 0 {
		return nil, fmt.Errorf("cannot extract frames: unknown video duration")
	}
	if ffmpeg == "" {
		ffmpeg = "ffmpeg"
	}
	if _, err := exec.LookPath(ffmpeg); err != nil {
		return nil, fmt.Errorf("ffmpeg not found in PATH: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create frame directory: %w", err)
	}

	interval := info.Duration / float64(count)
	for i := 0; i < count; i++ {
		framePath := filepath.Join(outDir, fmt.Sprintf("frame_%03d.jpg", i))
		cmd := exec.Command(ffmpeg,
			"-ss", fmt.Sprintf("%.3f", interval*float64(i)),
			"-i", path,
			"-vframes", "1",
			"-q:v", "2",
			"-y",
			framePath,
		)
		if err := cmd.Run(); err != nil {
			return nil, fmt.Errorf("failed to extract frame %d: %w", i, err)
		}
	}

	return ScanDirectory(outDir)
}
