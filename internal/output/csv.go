package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// CSVOutput writes each report table to <basePath>/<folder>/<topic>.csv with
// a fixed column order.
type CSVOutput struct {
	basePath string
	folder   string
	files    map[string]*csv.Writer
	handles  map[string]*os.File
}

func NewCSVOutput(basePath, folder string) *CSVOutput {
	return &CSVOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*csv.Writer),
		handles:  make(map[string]*os.File),
	}
}

func (c *CSVOutput) WriteMessage(topic string, msg []byte) error {
	var row map[string]interface{}
	if err := json.Unmarshal(msg, &row); err != nil {
		return err
	}

	columns := columnsFor(topic)
	writer, ok := c.files[topic]
	if !ok {
		dir := filepath.Join(c.basePath, c.folder)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
		file, err := os.Create(filepath.Join(dir, topic+".csv"))
		if err != nil {
			return err
		}
		writer = csv.NewWriter(file)
		c.files[topic] = writer
		c.handles[topic] = file

		if err := writer.Write(columns); err != nil {
			return err
		}
	}

	record := make([]string, len(columns))
	for i, column := range columns {
		if value, ok := row[column]; ok {
			record[i] = fmt.Sprintf("%v", value)
		}
	}
	if err := writer.Write(record); err != nil {
		return err
	}

	writer.Flush()
	return writer.Error()
}

func (c *CSVOutput) Close() error {
	for topic, writer := range c.files {
		writer.Flush()
		if err := writer.Error(); err != nil {
			return err
		}
		if err := c.handles[topic].Close(); err != nil {
			return err
		}
	}
	return nil
}
