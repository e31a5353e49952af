package errorgen

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/iancoleman/strcase"
)

type (
	StatusGen struct {
		SourceFile string
		StatusKeys []StatusKey
		StatusMaps []StatusMap
	}

	StatusKey struct {
		Name  string
		Value string
	}

	StatusMap struct {
		Key    string
		Code   string
		Reason string
	}
)

// GenerateStatusMapFromCSV renders the status taxonomy source file from a CSV
// with columns key,code,reason. The first row is a header and is skipped.
func GenerateStatusMapFromCSV(
	templateFileDir,
	templateName,
	fileLocation,
	outputDestination,
	outputFile string,
) {
	csvFile, err := os.Open(fileLocation)
	if err != nil {
		log.Fatal(err)
	}
	defer csvFile.Close()

	csvLines, err := csv.NewReader(csvFile).ReadAll()
	if err != nil {
		log.Fatal(err)
	}

	data := StatusGen{SourceFile: fileLocation}
	seen := make(map[string]bool)
	for i := 1; i < len(csvLines); i++ {
		key := csvLines[i][0]
		code := csvLines[i][1]
		reason := csvLines[i][2]

		name := fmt.Sprintf("StatusKey%s", strings.Join(strings.Split(strcase.ToCamel(key), " "), ""))
		if seen[name] {
			log.Fatalf("duplicate status key %q at line %d", key, i+1)
		}
		seen[name] = true

		data.StatusKeys = append(data.StatusKeys, StatusKey{Name: name, Value: key})
		data.StatusMaps = append(data.StatusMaps, StatusMap{Key: name, Code: code, Reason: reason})
	}

	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	tmpl := template.Must(template.New("").Funcs(sprig.TxtFuncMap()).ParseFiles(wd + templateFileDir))

	var processed bytes.Buffer
	if err := tmpl.ExecuteTemplate(&processed, templateName, data); err != nil {
		log.Fatalf("unable to parse data into template: %v", err)
	}

	formatted, err := format.Source(processed.Bytes())
	if err != nil {
		log.Fatalf("could not format processed template: %v", err)
	}

	outputPath := outputDestination + outputFile
	f, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("unable to create output file %s: %v", outputPath, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := w.Write(formatted); err != nil {
		log.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}
