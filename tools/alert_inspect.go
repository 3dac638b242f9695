package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"

	"github.com/ramyaaaa4/sign-language-recognition/repositories"
)

func main() {
	dbPath := flag.String("db", "./data/alerts", "Path to badger DB")
	prefix := flag.String("prefix", "alert:", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Patient", "Type", "Emotion", "Confidence", "Severity", "At", "Handled", "By"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	count := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()

			// Secondary indexes hold a pointer to the primary key, not a payload
			if strings.HasPrefix(string(item.Key()), "idx:") {
				continue
			}

			err := item.Value(func(v []byte) error {
				var stored repositories.StoredAlert
				if err := json.Unmarshal(v, &stored); err != nil {
					// Log and keep scanning instead of aborting the whole run
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}

				confidence := ""
				if stored.Confidence > 0 {
					confidence = fmt.Sprintf("%.2f", stored.Confidence)
				}
				handled := "no"
				if stored.Handled {
					handled = "yes"
				}
				table.Append([]string{
					string(item.Key()),
					stored.PatientID,
					string(stored.Kind),
					stored.Emotion,
					confidence,
					string(stored.Severity),
					stored.At.Format(time.RFC3339),
					handled,
					stored.HandledBy,
				})
				count++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Scan failed: ", err)
	}

	table.Render()
	fmt.Printf("\n%d alert(s)\n", count)
}

func openDB(path string) (*badger.DB, error) {
	options := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR)
	return badger.Open(options)
}
