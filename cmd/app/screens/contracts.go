package screens

import (
	"context"
	"fmt"
	"io"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	"github.com/epicevents/crm/internal/crm/controller"
	"github.com/epicevents/crm/internal/crm/domain"
	crmUseCase "github.com/epicevents/crm/internal/crm/usecase"
)

// ContractsScreen lists, filters, shows, creates and updates contracts.
type ContractsScreen struct {
	contracts crmUseCase.ContractUseCase
	prompt    *prompter
	out       io.Writer
}

// NewContractsScreen creates the contracts screen.
func NewContractsScreen(contracts crmUseCase.ContractUseCase, in io.Reader, out io.Writer) *ContractsScreen {
	return &ContractsScreen{
		contracts: contracts,
		prompt:    newPrompter(in, out),
		out:       out,
	}
}

// Name implements controller.Screen.
func (s *ContractsScreen) Name() string {
	return ScreenContracts
}

// Render shows the contracts menu and handles one action.
func (s *ContractsScreen) Render(ctx context.Context, accessToken string) (string, *authDomain.TokenPair, error) {
	printTitle(s.out, "Contracts")
	printMenu(s.out, []menuAction{
		{key: "l", label: "List contracts"},
		{key: "s", label: "List unsigned contracts"},
		{key: "p", label: "List contracts with unpaid amounts"},
		{key: "d", label: "Contract details"},
		{key: "c", label: "Create contract"},
		{key: "u", label: "Update contract"},
		{key: "r", label: "Back"},
		{key: "q", label: "Quit"},
	})

	choice, err := s.prompt.line("What is your choice?")
	if err != nil {
		return "", nil, err
	}

	switch choice {
	case "l":
		err = s.list(ctx, accessToken, "Contract list", s.contracts.List)
	case "s":
		err = s.list(ctx, accessToken, "Unsigned contracts", s.contracts.ListUnsigned)
	case "p":
		err = s.list(ctx, accessToken, "Contracts with unpaid amounts", s.contracts.ListUnpaid)
	case "d":
		err = s.details(ctx, accessToken)
	case "c":
		err = s.create(ctx, accessToken)
	case "u":
		err = s.update(ctx, accessToken)
	case "r":
		return controller.ScreenHome, nil, nil
	case "q":
		return controller.ScreenQuit, nil, nil
	}

	if err := reportError(s.out, err); err != nil {
		return "", nil, err
	}
	return ScreenContracts, nil, nil
}

func (s *ContractsScreen) list(
	ctx context.Context,
	accessToken string,
	title string,
	fetch func(ctx context.Context, accessToken string) ([]*domain.Contract, error),
) error {
	contracts, err := fetch(ctx, accessToken)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, headerStyle.Render(title))
	for _, contract := range contracts {
		fmt.Fprintf(s.out, "%s  client %s  total %10.2f  unpaid %10.2f  %s\n",
			contract.ID, contract.ClientID, contract.TotalAmount, contract.AmountUnpaid, contract.Status)
	}
	return nil
}

func (s *ContractsScreen) details(ctx context.Context, accessToken string) error {
	contractID, err := s.prompt.uuidField("Contract ID")
	if err != nil {
		return err
	}

	contract, err := s.contracts.Get(ctx, accessToken, contractID)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, headerStyle.Render("Contract details"))
	fmt.Fprintf(s.out, "ID:            %s\n", contract.ID)
	fmt.Fprintf(s.out, "Client:        %s\n", contract.ClientID)
	fmt.Fprintf(s.out, "Total amount:  %.2f\n", contract.TotalAmount)
	fmt.Fprintf(s.out, "Amount unpaid: %.2f\n", contract.AmountUnpaid)
	fmt.Fprintf(s.out, "Status:        %s\n", contract.Status)
	fmt.Fprintf(s.out, "Created:       %s\n", contract.CreatedAt.Format(dateFormat))
	return nil
}

func (s *ContractsScreen) create(ctx context.Context, accessToken string) error {
	input := &domain.CreateContractInput{}
	var err error

	if input.ClientID, err = s.prompt.uuidField("Client ID"); err != nil {
		return err
	}
	if input.TotalAmount, err = s.prompt.floatField("Total amount"); err != nil {
		return err
	}
	if input.AmountUnpaid, err = s.prompt.floatField("Amount unpaid"); err != nil {
		return err
	}

	status, err := s.prompt.line("Status (signed/unsigned)")
	if err != nil {
		return err
	}
	input.Status = domain.ContractStatus(status)

	confirmed, err := s.prompt.yesNo("Create the contract?")
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	contract, err := s.contracts.Create(ctx, accessToken, input)
	if err != nil {
		return err
	}
	printNotice(s.out, fmt.Sprintf("Contract %s created.", contract.ID))
	return nil
}

func (s *ContractsScreen) update(ctx context.Context, accessToken string) error {
	contractID, err := s.prompt.uuidField("Contract ID")
	if err != nil {
		return err
	}

	contract, err := s.contracts.Get(ctx, accessToken, contractID)
	if err != nil {
		return err
	}

	input := &domain.UpdateContractInput{Active: contract.Active}
	if input.TotalAmount, err = s.prompt.floatFieldDefault("Total amount", contract.TotalAmount); err != nil {
		return err
	}
	if input.AmountUnpaid, err = s.prompt.floatFieldDefault("Amount unpaid", contract.AmountUnpaid); err != nil {
		return err
	}

	status, err := s.prompt.lineDefault("Status (signed/unsigned)", string(contract.Status))
	if err != nil {
		return err
	}
	input.Status = domain.ContractStatus(status)

	updated, err := s.contracts.Update(ctx, accessToken, contractID, input)
	if err != nil {
		return err
	}
	printNotice(s.out, fmt.Sprintf("Contract %s updated.", updated.ID))
	return nil
}
