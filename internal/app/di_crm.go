package app

import (
	"fmt"

	crmRepository "github.com/epicevents/crm/internal/crm/repository"
	crmUseCase "github.com/epicevents/crm/internal/crm/usecase"
)

// UserRepository returns the user repository based on database driver.
func (c *Container) UserRepository() (crmUseCase.UserRepository, error) {
	var err error
	c.userRepoInit.Do(func() {
		c.userRepo, err = c.initUserRepository()
		if err != nil {
			c.initErrors["userRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// TeamRepository returns the team repository based on database driver.
func (c *Container) TeamRepository() (crmUseCase.TeamRepository, error) {
	var err error
	c.teamRepoInit.Do(func() {
		c.teamRepo, err = c.initTeamRepository()
		if err != nil {
			c.initErrors["teamRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["teamRepo"]; exists {
		return nil, storedErr
	}
	return c.teamRepo, nil
}

// ClientRepository returns the client repository based on database driver.
func (c *Container) ClientRepository() (crmUseCase.ClientRepository, error) {
	var err error
	c.clientRepoInit.Do(func() {
		c.clientRepo, err = c.initClientRepository()
		if err != nil {
			c.initErrors["clientRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["clientRepo"]; exists {
		return nil, storedErr
	}
	return c.clientRepo, nil
}

// ContractRepository returns the contract repository based on database driver.
func (c *Container) ContractRepository() (crmUseCase.ContractRepository, error) {
	var err error
	c.contractRepoInit.Do(func() {
		c.contractRepo, err = c.initContractRepository()
		if err != nil {
			c.initErrors["contractRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["contractRepo"]; exists {
		return nil, storedErr
	}
	return c.contractRepo, nil
}

// EventRepository returns the event repository based on database driver.
func (c *Container) EventRepository() (crmUseCase.EventRepository, error) {
	var err error
	c.eventRepoInit.Do(func() {
		c.eventRepo, err = c.initEventRepository()
		if err != nil {
			c.initErrors["eventRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["eventRepo"]; exists {
		return nil, storedErr
	}
	return c.eventRepo, nil
}

// UserUseCase returns the user use case.
func (c *Container) UserUseCase() (crmUseCase.UserUseCase, error) {
	var err error
	c.userUseCaseInit.Do(func() {
		c.userUseCase, err = c.initUserUseCase()
		if err != nil {
			c.initErrors["userUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// ClientUseCase returns the client use case.
func (c *Container) ClientUseCase() (crmUseCase.ClientUseCase, error) {
	var err error
	c.clientUseCaseInit.Do(func() {
		c.clientUseCase, err = c.initClientUseCase()
		if err != nil {
			c.initErrors["clientUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["clientUseCase"]; exists {
		return nil, storedErr
	}
	return c.clientUseCase, nil
}

// ContractUseCase returns the contract use case.
func (c *Container) ContractUseCase() (crmUseCase.ContractUseCase, error) {
	var err error
	c.contractUseCaseInit.Do(func() {
		c.contractUseCase, err = c.initContractUseCase()
		if err != nil {
			c.initErrors["contractUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["contractUseCase"]; exists {
		return nil, storedErr
	}
	return c.contractUseCase, nil
}

// EventUseCase returns the event use case.
func (c *Container) EventUseCase() (crmUseCase.EventUseCase, error) {
	var err error
	c.eventUseCaseInit.Do(func() {
		c.eventUseCase, err = c.initEventUseCase()
		if err != nil {
			c.initErrors["eventUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["eventUseCase"]; exists {
		return nil, storedErr
	}
	return c.eventUseCase, nil
}

// initUserRepository creates the user repository instance.
func (c *Container) initUserRepository() (crmUseCase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return crmRepository.NewMySQLUserRepository(db), nil
	case "postgres":
		return crmRepository.NewPostgreSQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTeamRepository creates the team repository instance.
func (c *Container) initTeamRepository() (crmUseCase.TeamRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for team repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return crmRepository.NewMySQLTeamRepository(db), nil
	case "postgres":
		return crmRepository.NewPostgreSQLTeamRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initClientRepository creates the client repository instance.
func (c *Container) initClientRepository() (crmUseCase.ClientRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for client repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return crmRepository.NewMySQLClientRepository(db), nil
	case "postgres":
		return crmRepository.NewPostgreSQLClientRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initContractRepository creates the contract repository instance.
func (c *Container) initContractRepository() (crmUseCase.ContractRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for contract repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return crmRepository.NewMySQLContractRepository(db), nil
	case "postgres":
		return crmRepository.NewPostgreSQLContractRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initEventRepository creates the event repository instance.
func (c *Container) initEventRepository() (crmUseCase.EventRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for event repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return crmRepository.NewMySQLEventRepository(db), nil
	case "postgres":
		return crmRepository.NewPostgreSQLEventRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initUserUseCase creates the user use case with all its dependencies.
func (c *Container) initUserUseCase() (crmUseCase.UserUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for user use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	teamRepo, err := c.TeamRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get team repository for user use case: %w", err)
	}

	tokenUseCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for user use case: %w", err)
	}

	authorizationUseCase, err := c.AuthorizationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get authorization use case for user use case: %w", err)
	}

	return crmUseCase.NewUserUseCase(
		txManager,
		userRepo,
		teamRepo,
		c.CredentialService(),
		tokenUseCase,
		authorizationUseCase,
	), nil
}

// initClientUseCase creates the client use case with all its dependencies.
func (c *Container) initClientUseCase() (crmUseCase.ClientUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for client use case: %w", err)
	}

	clientRepo, err := c.ClientRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get client repository for client use case: %w", err)
	}

	tokenUseCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for client use case: %w", err)
	}

	authorizationUseCase, err := c.AuthorizationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get authorization use case for client use case: %w", err)
	}

	return crmUseCase.NewClientUseCase(txManager, clientRepo, tokenUseCase, authorizationUseCase), nil
}

// initContractUseCase creates the contract use case with all its dependencies.
func (c *Container) initContractUseCase() (crmUseCase.ContractUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for contract use case: %w", err)
	}

	contractRepo, err := c.ContractRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get contract repository for contract use case: %w", err)
	}

	clientRepo, err := c.ClientRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get client repository for contract use case: %w", err)
	}

	tokenUseCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for contract use case: %w", err)
	}

	authorizationUseCase, err := c.AuthorizationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get authorization use case for contract use case: %w", err)
	}

	return crmUseCase.NewContractUseCase(txManager, contractRepo, clientRepo, tokenUseCase, authorizationUseCase), nil
}

// initEventUseCase creates the event use case with all its dependencies.
func (c *Container) initEventUseCase() (crmUseCase.EventUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for event use case: %w", err)
	}

	eventRepo, err := c.EventRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get event repository for event use case: %w", err)
	}

	contractRepo, err := c.ContractRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get contract repository for event use case: %w", err)
	}

	tokenUseCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for event use case: %w", err)
	}

	authorizationUseCase, err := c.AuthorizationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get authorization use case for event use case: %w", err)
	}

	return crmUseCase.NewEventUseCase(txManager, eventRepo, contractRepo, tokenUseCase, authorizationUseCase), nil
}
