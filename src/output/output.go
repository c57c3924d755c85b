// 结果展示：默认逐行打印、表格、csv文件
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	log "github.com/sirupsen/logrus"

	"github.com/andrewyi/pyparser/src/entity"
	"github.com/andrewyi/pyparser/src/enum"
	"github.com/andrewyi/pyparser/src/filestorage"
)

type Output struct {
	out            io.Writer
	results        filestorage.FileStorage
	datetimeFormat string
	logger         *log.Logger

	now func() time.Time
}

func NewOutput(out io.Writer, results filestorage.FileStorage, datetimeFormat string, logger *log.Logger) *Output {
	return &Output{
		out:            out,
		results:        results,
		datetimeFormat: datetimeFormat,
		logger:         logger,
		now:            time.Now,
	}
}

func (o *Output) Control(results entity.Table, format enum.OutputFormat, mode enum.Mode) error {
	switch format {
	case enum.OutputPretty:
		o.pretty(results)
		return nil
	case enum.OutputFile:
		return o.file(results, mode)
	default:
		return o.plain(results)
	}
}

func (o *Output) plain(results entity.Table) error {
	for _, row := range results {
		if _, err := fmt.Fprintln(o.out, strings.Join(row, " ")); err != nil {
			return err
		}
	}
	return nil
}

func (o *Output) pretty(results entity.Table) {
	if len(results) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(o.out)
	t.SetStyle(table.StyleDefault)
	t.AppendHeader(toRow(results[0]))
	for _, r := range results[1:] {
		t.AppendRow(toRow(r))
	}
	t.Render()
}

// 文件名为 <mode>_<时间>.csv
func (o *Output) file(results entity.Table, mode enum.Mode) error {
	fileName := fmt.Sprintf("%s_%s.csv", mode, o.now().Format(o.datetimeFormat))
	f, fp, err := o.results.Create(fileName)
	if err != nil {
		return fmt.Errorf("fail to create result file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(results); err != nil {
		return fmt.Errorf("fail to write result file: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	o.logger.WithField("path", fp).Info("results saved")
	return nil
}

func toRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
