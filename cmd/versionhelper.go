package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
)

func versionPrinter(c *cli.Context) {
	hostOS, err := getHostOS()
	if err != nil {
		hostOS = runtime.GOOS
	}
	hostMem, err := getHostMem()
	if err != nil {
		hostMem = "unknown"
	}

	_, _ = fmt.Fprintf(c.App.Writer, "%s %s\n", c.App.Name, versionString())
	_, _ = fmt.Fprintf(c.App.Writer, "  go:     %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	_, _ = fmt.Fprintf(c.App.Writer, "  host:   %s\n", hostOS)
	_, _ = fmt.Fprintf(c.App.Writer, "  memory: %s\n", hostMem)
}

// shortRevision returns the first 7 characters of the commit, taken from the build info when
// it was not set at link time.
func shortRevision(value string) string {
	if value == "" || value == "none" {
		value = "0000000"
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" {
					value = setting.Value
				}
			}
		}
	}
	if len(value) > 7 {
		return value[:7]
	}
	return value
}

// getHostOS returns detailed information about the operating system
func getHostOS() (string, error) {
	switch runtime.GOOS {
	case "linux":
		// Content example:
		// PRETTY_NAME="Ubuntu 23.04"
		data, err := os.ReadFile("/etc/os-release")
		if err != nil {
			return "", err
		}

		for _, line := range strings.Split(string(data), "\n") {
			if strings.HasPrefix(line, "PRETTY_NAME=") {
				return strings.Trim(strings.TrimPrefix(line, "PRETTY_NAME="), "\""), nil
			}
		}

		return "Linux", nil
	case "darwin":
		if out, err := exec.Command("sw_vers", "-productVersion").Output(); err == nil {
			return fmt.Sprintf("macOS %s", strings.TrimSpace(string(out))), nil
		}

		return "macOS", nil
	case "windows":
		if out, err := exec.Command("cmd", "/c", "ver").Output(); err == nil {
			return strings.TrimSpace(string(out)), nil
		}

		return "Windows", nil
	default:
		return runtime.GOOS, nil
	}
}

// getHostMem returns the total system memory
func getHostMem() (string, error) {
	var totalBytes uint64

	switch runtime.GOOS {
	case "linux":
		data, err := os.ReadFile("/proc/meminfo")
		if err != nil {
			return "", err
		}

		for _, line := range strings.Split(string(data), "\n") {
			if strings.HasPrefix(line, "MemTotal:") {
				fields := strings.Fields(line)
				if len(fields) == 3 && fields[2] == "kB" {
					if kb, err := strconv.ParseUint(fields[1], 10, 64); err == nil {
						totalBytes = kb * 1024
					}
				}
				break
			}
		}

	case "darwin":
		if out, err := exec.Command("sysctl", "-n", "hw.memsize").Output(); err == nil {
			if bytes, err := strconv.ParseUint(strings.TrimSpace(string(out)), 10, 64); err == nil {
				totalBytes = bytes
			}
		}
	}

	if totalBytes > 0 {
		return fmt.Sprintf("%d MB", totalBytes/1024/1024), nil
	}

	return "", errors.New("unable to determine memory")
}
