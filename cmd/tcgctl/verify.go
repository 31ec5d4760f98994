package main

import (
	"errors"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Kamar-Folarin/tcg-tracker/internal/db"
)

var errTablesMissing = errors.New("required database objects are missing, run tcgctl migrate")

var verifyCmd = &cobra.Command{
	Use:     "verify-tables",
	Aliases: []string{"verify"},
	Short:   "Check that the required tables exist",
	RunE:    runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	services, closeFn, err := openApp(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	reports, err := services.Store.VerifyTables(cmd.Context())
	if err != nil {
		return err
	}
	printReports(cmd.OutOrStdout(), reports)

	if !db.AllPresent(reports) {
		return errTablesMissing
	}
	return nil
}

func printReports(out io.Writer, reports []db.TableReport) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	io.WriteString(w, "OBJECT\tEXISTS\tROWS\n")
	for _, r := range reports {
		exists := "no"
		if r.Exists {
			exists = "yes"
		}
		rows := "-"
		switch {
		case r.Error != "":
			rows = "error: " + r.Error
		case r.Exists && r.Name != "update_updated_at_column()":
			rows = strconv.FormatInt(r.Rows, 10)
		}
		io.WriteString(w, r.Name+"\t"+exists+"\t"+rows+"\n")
	}
}
