package main

import (
	"bitbucket.org/Amartha/go-payment-instruction/internal/common/codegen/errorgen"
)

var (
	fileLocation      = "storages/status-map.csv"
	templateFileDir   = "/internal/common/codegen/errorgen/status_map.tmpl"
	templateName      = "status_map.tmpl"
	outputDestination = "./internal/models/"
	outputFile        = "status_map.go"
)

func main() {
	errorgen.GenerateStatusMapFromCSV(
		templateFileDir,
		templateName,
		fileLocation,
		outputDestination,
		outputFile)
}
