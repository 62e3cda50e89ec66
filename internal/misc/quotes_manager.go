package misc

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"

	log "github.com/sirupsen/logrus"
)

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

// QuotesManager serves motivational quotes shown on the dashboard,
// loaded once at startup from a CSV file.
type QuotesManager struct {
	Quotes       []*Quote
	GenresQuotes map[string][]*Quote
}

func NewQuoteManager(quotesCsvReader *csv.Reader) (*QuotesManager, error) {
	qm := &QuotesManager{
		GenresQuotes: make(map[string][]*Quote),
	}

	log.Println("reading quotes CSV ...")

	quotesCsvReader.Comma = ';'
	for {
		record, err := quotesCsvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(record) != 3 {
			return nil, fmt.Errorf("record [%s] does not have 3 elements", record)
		}

		// QUOTE;AUTHOR;GENRE
		quote := &Quote{
			Text:   record[0],
			Author: record[1],
			Genre:  record[2],
		}
		qm.Quotes = append(qm.Quotes, quote)
		qm.GenresQuotes[quote.Genre] = append(qm.GenresQuotes[quote.Genre], quote)
	}

	if len(qm.Quotes) == 0 {
		return nil, fmt.Errorf("no quotes found in CSV")
	}

	log.Printf("quotes CSV read %d quotes", len(qm.Quotes))

	return qm, nil
}

func (qm *QuotesManager) RandomQuote() *Quote {
	index := rand.Float64() * float64(len(qm.Quotes))
	return qm.Quotes[int(index)]
}

func (qm *QuotesManager) RandomQuoteByGenre(genre string) (*Quote, bool) {
	quotes, ok := qm.GenresQuotes[genre]
	if !ok || len(quotes) == 0 {
		return nil, false
	}
	index := rand.Float64() * float64(len(quotes))
	return quotes[int(index)], true
}
