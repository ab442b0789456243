package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Duhandrade22/vet-system/internal/controller"
	"github.com/Duhandrade22/vet-system/internal/format"
	"github.com/Duhandrade22/vet-system/vetapi"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Manage medical records",
	Long: `Medical record management commands.

Examples:
  vetctl records list --animal <animal-id>
  vetctl records create --animal <animal-id> --weight 12.5kg \
    --medications "Amoxicilina" --dosage "250mg 2x/dia" \
    --notes "Retorno em uma semana" --attended-at 2026-03-05T14:30
  vetctl records update <id> --notes "Sem retorno necessário"
  vetctl records delete <id>`,
}

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List medical records",
	Long: `List medical records, newest first. With --animal, only that
animal's records are shown.`,
	RunE: runRecordsList,
}

var recordsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a medical record",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordsGet,
}

var recordsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a medical record",
	RunE:  runRecordsCreate,
}

var recordsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update record fields",
	Long: `Update a medical record. Only the flags you pass are sent. A
record cannot be moved to another animal.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecordsUpdate,
}

var recordsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a medical record",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordsDelete,
}

// attendedAtLayout accepts the same minute-resolution timestamps the
// appointment forms use.
const attendedAtLayout = "2006-01-02T15:04"

func recordFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("weight", "", "animal weight at the visit")
	cmd.Flags().String("medications", "", "prescribed medications")
	cmd.Flags().String("dosage", "", "medication dosage")
	cmd.Flags().String("notes", "", "clinical notes")
	cmd.Flags().String("attended-at", "", "visit time, e.g. 2026-03-05T14:30 (local time)")
}

func init() {
	recordsListCmd.Flags().String("animal", "", "only records for this animal")

	recordFieldFlags(recordsCreateCmd)
	recordsCreateCmd.Flags().String("animal", "", "animal id")
	recordsCreateCmd.MarkFlagRequired("animal")
	recordsCreateCmd.MarkFlagRequired("weight")
	recordsCreateCmd.MarkFlagRequired("attended-at")

	recordFieldFlags(recordsUpdateCmd)

	recordsDeleteCmd.Flags().BoolP("force", "f", false, "skip confirmation prompt")

	recordsCmd.AddCommand(recordsListCmd)
	recordsCmd.AddCommand(recordsGetCmd)
	recordsCmd.AddCommand(recordsCreateCmd)
	recordsCmd.AddCommand(recordsUpdateCmd)
	recordsCmd.AddCommand(recordsDeleteCmd)

	rootCmd.AddCommand(recordsCmd)
}

func parseAttendedAt(value string) (time.Time, error) {
	t, err := time.ParseInLocation(attendedAtLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --attended-at %q, expected format %s", value, attendedAtLayout)
	}
	return t.UTC(), nil
}

func runRecordsList(cmd *cobra.Command, args []string) error {
	client, err := getAuthedClient()
	if err != nil {
		return err
	}

	ctx := context.Background()
	var records []vetapi.Record
	if animalID, _ := cmd.Flags().GetString("animal"); animalID != "" {
		records, err = client.Records.ListByAnimal(ctx, animalID)
	} else {
		records, err = client.Records.List(ctx)
	}
	if err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"records": records,
			"count":   len(records),
		})
	}

	if len(records) == 0 {
		fmt.Println("No records found")
		return nil
	}

	w := newTable()
	printTableHeader(w, "ID", "ATTENDED", "ANIMAL", "WEIGHT", "MEDICATIONS")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			truncate(r.ID, 12),
			format.DateTime(r.AttendedAt),
			truncate(r.AnimalID, 12),
			r.Weight,
			truncate(r.Medications, 30),
		)
	}
	return w.Flush()
}

func runRecordsGet(cmd *cobra.Command, args []string) error {
	client, err := getAuthedClient()
	if err != nil {
		return err
	}

	record, err := client.Records.Get(context.Background(), args[0])
	if err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(record)
	}

	fmt.Printf("%s\n", colorBold(format.DateTime(record.AttendedAt)))
	fmt.Printf("  Animal:      %s\n", record.AnimalID)
	fmt.Printf("  Weight:      %s\n", record.Weight)
	if record.Medications != "" {
		fmt.Printf("  Medications: %s\n", record.Medications)
	}
	if record.Dosage != "" {
		fmt.Printf("  Dosage:      %s\n", record.Dosage)
	}
	if record.Notes != "" {
		fmt.Printf("  Notes:       %s\n", record.Notes)
	}
	return nil
}

func runRecordsCreate(cmd *cobra.Command, args []string) error {
	client, err := getAuthedClient()
	if err != nil {
		return err
	}

	attendedRaw, _ := cmd.Flags().GetString("attended-at")
	attendedAt, err := parseAttendedAt(attendedRaw)
	if err != nil {
		return err
	}

	req := vetapi.CreateRecordRequest{AttendedAt: attendedAt}
	req.AnimalID, _ = cmd.Flags().GetString("animal")
	req.Weight, _ = cmd.Flags().GetString("weight")
	req.Medications, _ = cmd.Flags().GetString("medications")
	req.Dosage, _ = cmd.Flags().GetString("dosage")
	req.Notes, _ = cmd.Flags().GetString("notes")

	record, err := client.Records.Create(context.Background(), req)
	if err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(record)
	}
	fmt.Printf("%s Record created (%s)\n", colorGreen("✓"), record.ID)
	return nil
}

func runRecordsUpdate(cmd *cobra.Command, args []string) error {
	client, err := getAuthedClient()
	if err != nil {
		return err
	}

	req := vetapi.UpdateRecordRequest{}
	stringFlag := func(name string, dst **string) {
		if cmd.Flags().Changed(name) {
			v, _ := cmd.Flags().GetString(name)
			*dst = &v
		}
	}
	stringFlag("weight", &req.Weight)
	stringFlag("medications", &req.Medications)
	stringFlag("dosage", &req.Dosage)
	stringFlag("notes", &req.Notes)
	if cmd.Flags().Changed("attended-at") {
		raw, _ := cmd.Flags().GetString("attended-at")
		attendedAt, err := parseAttendedAt(raw)
		if err != nil {
			return err
		}
		req.AttendedAt = &attendedAt
	}

	record, err := client.Records.Update(context.Background(), args[0], req)
	if err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(record)
	}
	fmt.Printf("%s Record updated\n", colorGreen("✓"))
	return nil
}

func runRecordsDelete(cmd *cobra.Command, args []string) error {
	client, err := getAuthedClient()
	if err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	ctx := context.Background()

	ctrl := controller.NewRecord(args[0], client, terminalNotifier{}, terminalPrompter{force: force}, terminalNavigator{})
	ctrl.Load(ctx)
	if ctrl.Record == nil {
		return fmt.Errorf("record %s not found", args[0])
	}
	ctrl.Delete(ctx)
	return nil
}
