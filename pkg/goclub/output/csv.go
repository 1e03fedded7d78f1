package output

import (
	"io"

	"github.com/gocarina/gocsv"

	"github.com/ukaji3/goclub-go/pkg/goclub/models"
)

// WriteTableCSV writes the game details table with a header row.
func WriteTableCSV(w io.Writer, rows []models.TableRow) error {
	if rows == nil {
		rows = []models.TableRow{}
	}
	return gocsv.Marshal(&rows, w)
}
