package output

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/chrisdamba/dispatchlens/internal/cloudwriter"
	"github.com/chrisdamba/dispatchlens/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// ParquetOutput writes each report table to <basePath>/<folder>/<topic>.parquet,
// locally or through a cloud writer factory.
type ParquetOutput struct {
	basePath           string
	folder             string
	writers            map[string]*writer.ParquetWriter
	files              map[string]source.ParquetFile
	cloudWriterFactory cloudwriter.Factory
	cloudBucketName    string
}

func NewParquetOutput(cfg *models.Config) (*ParquetOutput, error) {
	p := &ParquetOutput{
		basePath: cfg.OutputPath,
		folder:   cfg.OutputFolder,
		writers:  make(map[string]*writer.ParquetWriter),
		files:    make(map[string]source.ParquetFile),
	}

	if cfg.OutputDestination != "" && cfg.OutputDestination != "local" {
		var factory cloudwriter.Factory
		var err error

		switch cfg.CloudStorage.Provider {
		case "s3":
			factory, err = cloudwriter.NewS3WriterFactory(cfg.CloudStorage.Region)
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", cfg.CloudStorage.Provider)
		}

		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}

		p.cloudWriterFactory = factory
		p.cloudBucketName = cfg.CloudStorage.BucketName
	}

	return p, nil
}

func (p *ParquetOutput) WriteMessage(topic string, msg []byte) error {
	var row map[string]interface{}
	if err := json.Unmarshal(msg, &row); err != nil {
		return err
	}

	pw, ok := p.writers[topic]
	if !ok {
		var err error
		pw, err = p.createNewWriter(topic)
		if err != nil {
			return fmt.Errorf("failed to create new writer: %w", err)
		}
	}

	if err := pw.Write(row); err != nil {
		return fmt.Errorf("failed to write %s row: %w", topic, err)
	}

	return nil
}

func (p *ParquetOutput) createNewWriter(topic string) (*writer.ParquetWriter, error) {
	var fw source.ParquetFile
	var err error
	if p.cloudWriterFactory != nil {
		objectPath := filepath.Join(p.folder, topic+".parquet")
		cw, err := p.cloudWriterFactory.NewWriter(p.cloudBucketName, objectPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		fw = newCloudParquetFile(cw)
	} else {
		dir := filepath.Join(p.basePath, p.folder)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
		fw, err = local.NewLocalFileWriter(filepath.Join(dir, topic+".parquet"))
		if err != nil {
			return nil, fmt.Errorf("failed to create local file writer: %w", err)
		}
	}

	sc, err := GetSchema(topic)
	if err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	pw, err := writer.NewParquetWriter(fw, nil, 4)
	if err != nil {
		return nil, fmt.Errorf("failed to create ParquetWriter: %w", err)
	}
	pw.SchemaHandler = sc

	p.writers[topic] = pw
	p.files[topic] = fw

	return pw, nil
}

func (p *ParquetOutput) Close() error {
	var lastErr error
	for topic, pw := range p.writers {
		if err := pw.WriteStop(); err != nil {
			lastErr = err
			log.Printf("Error closing writer for table %s: %v", topic, err)
		}
		if f, ok := p.files[topic]; ok {
			if err := f.Close(); err != nil {
				lastErr = err
				log.Printf("Error closing file for table %s: %v", topic, err)
			}
		}
	}
	return lastErr
}

// cloudParquetFile adapts a cloudwriter.Writer to the parquet source
// interface. The object is created implicitly on first write, so Open and
// Create just hand the instance back.
type cloudParquetFile struct {
	cloudWriter cloudwriter.Writer
	offset      int64
}

func newCloudParquetFile(cw cloudwriter.Writer) *cloudParquetFile {
	return &cloudParquetFile{cloudWriter: cw}
}

func (c *cloudParquetFile) Open(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *cloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *cloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *cloudParquetFile) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *cloudParquetFile) Write(p []byte) (n int, err error) {
	return c.cloudWriter.Write(p)
}

func (c *cloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
