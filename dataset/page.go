package dataset

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var ErrUnexpectedResponseShape = errors.New("unexpected response shape")

// Record is one dataset entry. Numbers are held as json.Number so values
// beyond float64 precision survive printing.
type Record map[string]interface{}

type Shape int

const (
	Unrecognized Shape = iota
	Sequence
	ObjectWithTotal
	ObjectWithData
)

func (s Shape) String() string {
	switch s {
	case Sequence:
		return "sequence"
	case ObjectWithTotal:
		return "object-with-total"
	case ObjectWithData:
		return "object-with-data"
	default:
		return "unrecognized"
	}
}

// Page is a metadata response classified once into one of the known shapes.
// Records holds whatever records the body carried: the array itself for a
// Sequence, the nested "data" array for the object shapes.
type Page struct {
	Shape    Shape
	Total    int
	HasTotal bool
	Records  []Record
}

func Decode(resp *Response, totalHeader string) Page {
	page := Page{Shape: Unrecognized, Records: []Record{}}

	bodyTotal := -1
	if gjson.ValidBytes(resp.Body) {
		body := gjson.ParseBytes(resp.Body)
		switch {
		case body.IsArray():
			page.Shape = Sequence
			page.Records = records(body)
			bodyTotal = len(body.Array())
		case body.IsObject():
			total := body.Get("total")
			data := body.Get("data")
			if data.IsArray() {
				page.Records = records(data)
			}
			if total.Type == gjson.Number && total.Int() >= 0 {
				page.Shape = ObjectWithTotal
				bodyTotal = int(total.Int())
			} else if data.IsArray() {
				page.Shape = ObjectWithData
				bodyTotal = len(data.Array())
			}
		}
	}

	if total, ok := headerTotal(resp, totalHeader); ok {
		page.Total = total
		page.HasTotal = true
		return page
	}

	if bodyTotal >= 0 {
		page.Total = bodyTotal
		page.HasTotal = true
	}
	return page
}

// SingleRecord extracts the record from a limit=1 response: the first element
// of a non-empty array, or the object itself.
func SingleRecord(resp *Response) (Record, bool) {
	if !gjson.ValidBytes(resp.Body) {
		return nil, false
	}

	body := gjson.ParseBytes(resp.Body)
	if body.IsArray() {
		items := body.Array()
		if len(items) == 0 {
			return nil, false
		}
		return toRecord(items[0])
	}
	return toRecord(body)
}

func headerTotal(resp *Response, name string) (int, bool) {
	if name == "" || resp.Header == nil {
		return 0, false
	}
	value := strings.TrimSpace(resp.Header.Get(name))
	if value == "" {
		return 0, false
	}
	total, err := strconv.Atoi(value)
	if err != nil || total < 0 {
		return 0, false
	}
	return total, true
}

func records(array gjson.Result) []Record {
	result := []Record{}
	for _, item := range array.Array() {
		if record, ok := toRecord(item); ok {
			result = append(result, record)
		}
	}
	return result
}

func toRecord(item gjson.Result) (Record, bool) {
	if !item.IsObject() {
		return nil, false
	}
	decoder := json.NewDecoder(strings.NewReader(item.Raw))
	decoder.UseNumber()
	record := Record{}
	if err := decoder.Decode(&record); err != nil {
		return nil, false
	}
	return record, true
}
