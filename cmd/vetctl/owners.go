package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Duhandrade22/vet-system/internal/controller"
	"github.com/Duhandrade22/vet-system/internal/format"
	"github.com/Duhandrade22/vet-system/vetapi"
)

var ownersCmd = &cobra.Command{
	Use:   "owners",
	Short: "Manage pet owners",
	Long: `Owner management commands.

Examples:
  vetctl owners list
  vetctl owners list --search maria
  vetctl owners create --name "Maria Souza" --phone 11987654321
  vetctl owners update <id> --city "São Paulo"
  vetctl owners delete <id>`,
}

var ownersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all owners",
	RunE:  runOwnersList,
}

var ownersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show an owner and their animals",
	Args:  cobra.ExactArgs(1),
	RunE:  runOwnersGet,
}

var ownersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new owner",
	RunE:  runOwnersCreate,
}

var ownersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update owner fields",
	Long: `Update an owner. Only the flags you pass are sent; everything
else is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runOwnersUpdate,
}

var ownersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an owner",
	Args:  cobra.ExactArgs(1),
	RunE:  runOwnersDelete,
}

func ownerFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "owner name")
	cmd.Flags().String("phone", "", "phone number")
	cmd.Flags().String("email", "", "email address")
	cmd.Flags().String("street", "", "street")
	cmd.Flags().String("number", "", "street number")
	cmd.Flags().String("complement", "", "address complement")
	cmd.Flags().String("neighborhood", "", "neighborhood")
	cmd.Flags().String("city", "", "city")
	cmd.Flags().String("state", "", "state")
	cmd.Flags().String("zip-code", "", "postal code")
}

func init() {
	ownersListCmd.Flags().String("search", "", "filter by name, phone, or email")

	ownerFieldFlags(ownersCreateCmd)
	ownersCreateCmd.MarkFlagRequired("name")
	ownersCreateCmd.MarkFlagRequired("phone")

	ownerFieldFlags(ownersUpdateCmd)

	ownersDeleteCmd.Flags().BoolP("force", "f", false, "skip confirmation prompt")

	ownersCmd.AddCommand(ownersListCmd)
	ownersCmd.AddCommand(ownersGetCmd)
	ownersCmd.AddCommand(ownersCreateCmd)
	ownersCmd.AddCommand(ownersUpdateCmd)
	ownersCmd.AddCommand(ownersDeleteCmd)

	rootCmd.AddCommand(ownersCmd)
}

func runOwnersList(cmd *cobra.Command, args []string) error {
	client, err := getAuthedClient()
	if err != nil {
		return err
	}

	owners, err := client.Owners.List(context.Background())
	if err != nil {
		printError(err)
		return err
	}

	if search, _ := cmd.Flags().GetString("search"); search != "" {
		ctrl := controller.NewOwner("", client, terminalNotifier{}, terminalPrompter{}, terminalNavigator{})
		ctrl.Owners = owners
		ctrl.Filter(search)
		owners = ctrl.FilteredOwners
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"owners": owners,
			"count":  len(owners),
		})
	}

	if len(owners) == 0 {
		fmt.Println("No owners found")
		return nil
	}

	w := newTable()
	printTableHeader(w, "ID", "NAME", "PHONE", "EMAIL", "CITY")
	for _, o := range owners {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			truncate(o.ID, 12),
			o.Name,
			format.Phone(o.Phone),
			o.Email,
			o.City,
		)
	}
	return w.Flush()
}

func runOwnersGet(cmd *cobra.Command, args []string) error {
	client, err := getAuthedClient()
	if err != nil {
		return err
	}

	ctx := context.Background()
	owner, err := client.Owners.Get(ctx, args[0])
	if err != nil {
		printError(err)
		return err
	}
	animals, err := client.Animals.ListByOwner(ctx, owner.ID)
	if err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		owner.Animals = animals
		return printJSON(owner)
	}

	fmt.Printf("%s\n", colorBold(owner.Name))
	fmt.Printf("  Phone: %s\n", format.Phone(owner.Phone))
	if owner.Email != "" {
		fmt.Printf("  Email: %s\n", owner.Email)
	}
	if owner.City != "" {
		fmt.Printf("  City:  %s/%s\n", owner.City, owner.State)
	}
	if owner.ZipCode != "" {
		fmt.Printf("  CEP:   %s\n", format.CEP(owner.ZipCode))
	}

	fmt.Printf("\nAnimals (%d):\n", len(animals))
	for _, a := range animals {
		fmt.Printf("  %s  %s (%s)\n", truncate(a.ID, 12), a.Name, a.Species)
	}
	return nil
}

func runOwnersCreate(cmd *cobra.Command, args []string) error {
	client, err := getAuthedClient()
	if err != nil {
		return err
	}

	req := vetapi.CreateOwnerRequest{}
	req.Name, _ = cmd.Flags().GetString("name")
	req.Phone, _ = cmd.Flags().GetString("phone")
	req.Email, _ = cmd.Flags().GetString("email")
	req.Street, _ = cmd.Flags().GetString("street")
	req.Number, _ = cmd.Flags().GetString("number")
	req.Complement, _ = cmd.Flags().GetString("complement")
	req.Neighborhood, _ = cmd.Flags().GetString("neighborhood")
	req.City, _ = cmd.Flags().GetString("city")
	req.State, _ = cmd.Flags().GetString("state")
	req.ZipCode, _ = cmd.Flags().GetString("zip-code")

	owner, err := client.Owners.Create(context.Background(), req)
	if err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(owner)
	}
	fmt.Printf("%s Owner %s created (%s)\n", colorGreen("✓"), colorBold(owner.Name), owner.ID)
	return nil
}

func runOwnersUpdate(cmd *cobra.Command, args []string) error {
	client, err := getAuthedClient()
	if err != nil {
		return err
	}

	// Only flags the user actually passed make it into the payload.
	req := vetapi.UpdateOwnerRequest{}
	stringFlag := func(name string, dst **string) {
		if cmd.Flags().Changed(name) {
			v, _ := cmd.Flags().GetString(name)
			*dst = &v
		}
	}
	stringFlag("name", &req.Name)
	stringFlag("phone", &req.Phone)
	stringFlag("email", &req.Email)
	stringFlag("street", &req.Street)
	stringFlag("number", &req.Number)
	stringFlag("complement", &req.Complement)
	stringFlag("neighborhood", &req.Neighborhood)
	stringFlag("city", &req.City)
	stringFlag("state", &req.State)
	stringFlag("zip-code", &req.ZipCode)

	owner, err := client.Owners.Update(context.Background(), args[0], req)
	if err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(owner)
	}
	fmt.Printf("%s Owner %s updated\n", colorGreen("✓"), colorBold(owner.Name))
	return nil
}

func runOwnersDelete(cmd *cobra.Command, args []string) error {
	client, err := getAuthedClient()
	if err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	ctx := context.Background()

	ctrl := controller.NewOwner(args[0], client, terminalNotifier{}, terminalPrompter{force: force}, terminalNavigator{})
	ctrl.Load(ctx)
	if ctrl.Owner == nil {
		return fmt.Errorf("owner %s not found", args[0])
	}
	ctrl.DeleteOwner(ctx)
	return nil
}
