package proc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vietanhduong/wcap/pkg/logging/logfields"
)

// ParseProcMaps returns the executable, object backed mappings of pid in the
// order the kernel lists them.
func ParseProcMaps(pid int) ([]*Map, error) {
	mapfile := HostProcPath(fmt.Sprintf("%d", pid), "maps")
	f, err := os.Open(mapfile)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", mapfile, err)
	}
	defer f.Close()

	ret, err := parseProcMap(f, pid)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", mapfile, err)
	}
	return ret, nil
}

func parseProcMap(r io.Reader, pid int) ([]*Map, error) {
	var ret []*Map
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		m, perm, err := parseMapLine(line)
		if err != nil {
			log.WithField(logfields.PID, pid).Tracef("Skip maps line %q: %v", line, err)
			continue
		}
		if len(perm) != 4 || perm[2] != 'x' { // executable only
			continue
		}
		if isPseudo(m.Pathname) {
			continue
		}
		if strings.Contains(m.Pathname, "/memfd:") {
			if pathname := findMemFdPath(pid, m.Inode); pathname != "" {
				m.Pathname = pathname
				m.InMem = true
			}
		}
		ret = append(ret, m)
	}
	return ret, scanner.Err()
}

// parseMapLine parses "start-end perm offset major:minor inode [path]".
// The path may contain spaces.
func parseMapLine(line string) (*Map, string, error) {
	fields := strings.SplitN(line, " ", 6)
	if len(fields) < 5 {
		return nil, "", fmt.Errorf("expected at least 5 fields, got %d", len(fields))
	}
	var (
		m   Map
		err error
	)
	start, end, ok := strings.Cut(fields[0], "-")
	if !ok {
		return nil, "", fmt.Errorf("invalid address range %q", fields[0])
	}
	if m.StartAddr, err = strconv.ParseUint(start, 16, 64); err != nil {
		return nil, "", fmt.Errorf("parse start address: %w", err)
	}
	if m.EndAddr, err = strconv.ParseUint(end, 16, 64); err != nil {
		return nil, "", fmt.Errorf("parse end address: %w", err)
	}
	if m.FileOffset, err = strconv.ParseUint(fields[2], 16, 64); err != nil {
		return nil, "", fmt.Errorf("parse offset: %w", err)
	}
	major, minor, ok := strings.Cut(fields[3], ":")
	if !ok {
		return nil, "", fmt.Errorf("invalid device %q", fields[3])
	}
	maj, err := strconv.ParseUint(major, 16, 32)
	if err != nil {
		return nil, "", fmt.Errorf("parse device major: %w", err)
	}
	mnr, err := strconv.ParseUint(minor, 16, 32)
	if err != nil {
		return nil, "", fmt.Errorf("parse device minor: %w", err)
	}
	m.DevMajor, m.DevMinor = uint32(maj), uint32(mnr)
	if m.Inode, err = strconv.ParseUint(fields[4], 10, 64); err != nil {
		return nil, "", fmt.Errorf("parse inode: %w", err)
	}
	if len(fields) == 6 {
		m.Pathname = strings.TrimSpace(fields[5])
	}
	return &m, fields[1], nil
}

func findMemFdPath(pid int, inode uint64) string {
	fdpath := HostProcPath(fmt.Sprintf("%d/fd", pid))
	entries, err := os.ReadDir(fdpath)
	if err != nil {
		log.WithFields(logrus.Fields{logfields.PID: pid, logfields.File: fdpath}).Warnf("Failed to list directory: %v", err)
		return ""
	}
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		if info, _ := ent.Info(); info != nil {
			if stats, ok := info.Sys().(*syscall.Stat_t); ok && stats.Ino == inode {
				return filepath.Join(fdpath, ent.Name())
			}
		}
	}
	return ""
}
