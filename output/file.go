package output

import (
	"fmt"
	"os"

	"github.com/klemenp/plaintab/core"
	"github.com/klemenp/plaintab/core/format"
)

// File writes a table through a formatter into a file on disk.
type File struct {
	fileName  string
	log       Logger
	formatter format.Formatter
}

func NewFile(fileName string, formatter format.Formatter, logger Logger) *File {
	return &File{
		fileName:  fileName,
		log:       logger,
		formatter: formatter,
	}
}

func (fo *File) Write(table *core.Table) error {
	file, err := os.Create(fo.fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	err = fo.formatter.Format(table, file)
	if err != nil {
		return fmt.Errorf("failed to format table as %s: %w", fo.formatter.Name(), err)
	}

	fo.log.Info("successfully saved " + fo.formatter.Name() + " to " + fo.fileName)
	return nil
}
