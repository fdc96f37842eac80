package app

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

func PathExists(path string) bool {
	_, err := os.Stat(path)

	if os.IsNotExist(err) {
		return false
	}

	return true
}

func IsDir(dir string) bool {
	dirStat, err := os.Stat(dir)

	if os.IsNotExist(err) {
		return false
	}

	return dirStat.IsDir()
}

// ValidateDir checks that dir exists, is a directory and is writable, then
// returns it with a single trailing separator stripped. The writability
// probe file is removed on every path, including failure.
func ValidateDir(dir string) (string, error) {
	if !IsDir(dir) {
		return "", fmt.Errorf("%s does not exist or is not a directory", dir)
	}

	probe, err := os.CreateTemp(dir, "."+AppName+"-probe-*")
	if IsError(err) {
		return "", fmt.Errorf("%s is not writable: %w", dir, err)
	}
	defer os.Remove(probe.Name())
	defer probe.Close()

	if dir != string(os.PathSeparator) {
		dir = strings.TrimSuffix(dir, string(os.PathSeparator))
	}

	return dir, nil
}

func FileCopy(src, dest string, keepAttributes bool) error {
	if keepAttributes == true && IsUnix { // windows does not support cp nor preserving attributes
		err := exec.Command("cp", "-pRP", src, dest).Run()

		return err
	}
	s, err := os.Open(src)
	if IsError(err) {
		return err
	}

	defer s.Close()
	d, err := os.Create(dest)
	if IsError(err) {
		return err
	}
	if _, err := io.Copy(d, s); IsError(err) {
		d.Close()
		return err
	}
	return d.Close()
}

func FileMove(src, dest string) error {
	err := os.Rename(src, dest)

	if IsError(err) {
		return err
	}

	return nil
}

func MakeDir(dir string) error {
	if PathExists(dir) {
		return nil
	}

	return os.MkdirAll(dir, DirPerms)
}
