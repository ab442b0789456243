package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Duhandrade22/vet-system/internal/controller"
	"github.com/Duhandrade22/vet-system/internal/format"
	"github.com/Duhandrade22/vet-system/vetapi"
)

var animalsCmd = &cobra.Command{
	Use:   "animals",
	Short: "Manage animals",
	Long: `Animal management commands.

Examples:
  vetctl animals list
  vetctl animals list --owner <owner-id>
  vetctl animals create --name Rex --species Cachorro --owner <owner-id>
  vetctl animals update <id> --breed "Golden Retriever"
  vetctl animals delete <id>`,
}

var animalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List animals",
	RunE:  runAnimalsList,
}

var animalsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show an animal and its medical history",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnimalsGet,
}

var animalsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new animal",
	RunE:  runAnimalsCreate,
}

var animalsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update animal fields",
	Long: `Update an animal. Only the flags you pass are sent. The owner
of an animal cannot be changed.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnimalsUpdate,
}

var animalsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an animal and its records",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnimalsDelete,
}

func init() {
	animalsListCmd.Flags().String("owner", "", "only animals belonging to this owner")

	animalsCreateCmd.Flags().String("name", "", "animal name")
	animalsCreateCmd.Flags().String("species", "", "species (Cachorro, Gato, ...)")
	animalsCreateCmd.Flags().String("breed", "", "breed")
	animalsCreateCmd.Flags().String("owner", "", "owner id")
	animalsCreateCmd.MarkFlagRequired("name")
	animalsCreateCmd.MarkFlagRequired("species")
	animalsCreateCmd.MarkFlagRequired("owner")

	animalsUpdateCmd.Flags().String("name", "", "animal name")
	animalsUpdateCmd.Flags().String("species", "", "species")
	animalsUpdateCmd.Flags().String("breed", "", "breed")

	animalsDeleteCmd.Flags().BoolP("force", "f", false, "skip confirmation prompt")

	animalsCmd.AddCommand(animalsListCmd)
	animalsCmd.AddCommand(animalsGetCmd)
	animalsCmd.AddCommand(animalsCreateCmd)
	animalsCmd.AddCommand(animalsUpdateCmd)
	animalsCmd.AddCommand(animalsDeleteCmd)

	rootCmd.AddCommand(animalsCmd)
}

func runAnimalsList(cmd *cobra.Command, args []string) error {
	client, err := getAuthedClient()
	if err != nil {
		return err
	}

	ctx := context.Background()
	var animals []vetapi.Animal
	if ownerID, _ := cmd.Flags().GetString("owner"); ownerID != "" {
		animals, err = client.Animals.ListByOwner(ctx, ownerID)
	} else {
		animals, err = client.Animals.List(ctx)
	}
	if err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"animals": animals,
			"count":   len(animals),
		})
	}

	if len(animals) == 0 {
		fmt.Println("No animals found")
		return nil
	}

	w := newTable()
	printTableHeader(w, "ID", "NAME", "SPECIES", "BREED", "OWNER")
	for _, a := range animals {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			truncate(a.ID, 12),
			a.Name,
			a.Species,
			a.Breed,
			truncate(a.OwnerID, 12),
		)
	}
	return w.Flush()
}

func runAnimalsGet(cmd *cobra.Command, args []string) error {
	client, err := getAuthedClient()
	if err != nil {
		return err
	}

	ctx := context.Background()
	animal, err := client.Animals.Get(ctx, args[0])
	if err != nil {
		printError(err)
		return err
	}
	records, err := client.Records.ListByAnimal(ctx, animal.ID)
	if err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"animal":  animal,
			"records": records,
		})
	}

	fmt.Printf("%s\n", colorBold(animal.Name))
	fmt.Printf("  Species: %s\n", animal.Species)
	if animal.Breed != "" {
		fmt.Printf("  Breed:   %s\n", animal.Breed)
	}
	fmt.Printf("  Owner:   %s\n", animal.OwnerID)

	fmt.Printf("\nMedical history (%d):\n", len(records))
	for _, r := range records {
		fmt.Printf("  %s  %s  %s\n",
			truncate(r.ID, 12),
			format.DateTime(r.AttendedAt),
			truncate(r.Notes, 40),
		)
	}
	return nil
}

func runAnimalsCreate(cmd *cobra.Command, args []string) error {
	client, err := getAuthedClient()
	if err != nil {
		return err
	}

	req := vetapi.CreateAnimalRequest{}
	req.Name, _ = cmd.Flags().GetString("name")
	req.Species, _ = cmd.Flags().GetString("species")
	req.Breed, _ = cmd.Flags().GetString("breed")
	req.OwnerID, _ = cmd.Flags().GetString("owner")

	animal, err := client.Animals.Create(context.Background(), req)
	if err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(animal)
	}
	fmt.Printf("%s Animal %s created (%s)\n", colorGreen("✓"), colorBold(animal.Name), animal.ID)
	return nil
}

func runAnimalsUpdate(cmd *cobra.Command, args []string) error {
	client, err := getAuthedClient()
	if err != nil {
		return err
	}

	req := vetapi.UpdateAnimalRequest{}
	stringFlag := func(name string, dst **string) {
		if cmd.Flags().Changed(name) {
			v, _ := cmd.Flags().GetString(name)
			*dst = &v
		}
	}
	stringFlag("name", &req.Name)
	stringFlag("species", &req.Species)
	stringFlag("breed", &req.Breed)

	animal, err := client.Animals.Update(context.Background(), args[0], req)
	if err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(animal)
	}
	fmt.Printf("%s Animal %s updated\n", colorGreen("✓"), colorBold(animal.Name))
	return nil
}

func runAnimalsDelete(cmd *cobra.Command, args []string) error {
	client, err := getAuthedClient()
	if err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	ctx := context.Background()

	ctrl := controller.NewAnimal(args[0], client, terminalNotifier{}, terminalPrompter{force: force}, terminalNavigator{})
	ctrl.Load(ctx)
	if ctrl.Animal == nil {
		return fmt.Errorf("animal %s not found", args[0])
	}
	ctrl.DeleteAnimal(ctx)
	return nil
}
