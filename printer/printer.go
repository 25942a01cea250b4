package printer

import (
	"encoding/json"
	"fmt"
	"io"

	"code.cloudfoundry.org/dataset-sampler/dataset"
	"github.com/tidwall/pretty"
)

// Width 0 puts every array element on its own line.
var recordStyle = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: true,
}

type Printer struct {
	Out io.Writer
}

func (p *Printer) Total(total int) {
	fmt.Fprintf(p.Out, "Total entries in dataset: %d\n\n", total)
}

func (p *Printer) Records(records []dataset.Record) error {
	fmt.Fprintf(p.Out, "Retrieved %d records\n", len(records))
	if len(records) == 0 {
		return nil
	}

	fmt.Fprintf(p.Out, "\nFirst %d entries:\n", len(records))
	for i, record := range records {
		recordBytes, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal record %d: %s", i+1, err)
		}
		fmt.Fprintf(p.Out, "\n--- Entry %d ---\n", i+1)
		if _, err := p.Out.Write(pretty.PrettyOptions(recordBytes, recordStyle)); err != nil {
			return fmt.Errorf("write record %d: %s", i+1, err)
		}
	}
	return nil
}
