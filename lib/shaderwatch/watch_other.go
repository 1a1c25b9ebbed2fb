//go:build !linux

package shaderwatch

import "fmt"

func (w *Watcher) watch(path string) {
	w.logger.Warn(fmt.Sprintf("Shader watching is only supported on linux, not watching %s", path))
}
