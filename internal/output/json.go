package output

import (
	"os"
	"path/filepath"
)

// JSONOutput writes each report table to <basePath>/<folder>/<topic>.json as
// newline-delimited JSON, one row per line.
type JSONOutput struct {
	basePath string
	folder   string
	files    map[string]*os.File
}

func NewJSONOutput(basePath, folder string) *JSONOutput {
	return &JSONOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
	}
}

func (j *JSONOutput) WriteMessage(topic string, msg []byte) error {
	file, ok := j.files[topic]
	if !ok {
		dir := filepath.Join(j.basePath, j.folder)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
		var err error
		file, err = os.Create(filepath.Join(dir, topic+".json"))
		if err != nil {
			return err
		}
		j.files[topic] = file
	}

	if _, err := file.Write(msg); err != nil {
		return err
	}
	_, err := file.WriteString("\n")
	return err
}

func (j *JSONOutput) Close() error {
	for _, file := range j.files {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}
