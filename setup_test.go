package powermodule

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/GoCodeAlone/powermodule/config"
	"github.com/GoCodeAlone/powermodule/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDTO(phase Phase, m Module) SetupDTO {
	name := ModuleName(m)
	caps, err := CapabilitiesOf(m)
	if err != nil {
		panic(err)
	}
	return SetupDTO{
		Phase:           phase,
		Module:          m,
		ModuleName:      name,
		Capabilities:    caps,
		RootContainer:   container.New(container.WithName("root")),
		ModuleContainer: container.New(container.WithName(name)),
		AppConfig:       config.ForAppRoot("/srv/shop"),
	}
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "pre", PhasePre.String())
	assert.Equal(t, "post", PhasePost.String())
	assert.Equal(t, "Phase(7)", Phase(7).String())
}

func TestAppConfigInjector(t *testing.T) {
	dto := setupDTO(PhasePost, DatabaseModule{})
	require.NoError(t, AppConfigInjector{}.Setup(dto))
	assert.False(t, dto.ModuleContainer.Has(config.AppConfigID), "post phase does nothing")

	dto.Phase = PhasePre
	require.NoError(t, AppConfigInjector{}.Setup(dto))
	cfg, err := container.Resolve[*config.AppConfig](dto.ModuleContainer)
	require.NoError(t, err)
	assert.Same(t, dto.AppConfig, cfg)

	other := config.ForAppRoot("/elsewhere")
	dto.ModuleContainer.Set(config.AppConfigID, other, container.Raw)
	require.NoError(t, AppConfigInjector{}.Setup(dto))
	cfg, err = container.Resolve[*config.AppConfig](dto.ModuleContainer)
	require.NoError(t, err)
	assert.Same(t, other, cfg, "an existing entry is kept")
	assert.False(t, dto.ModuleContainer.Has(LoggerID), "no logger to inject")

	logs := &logger{t}
	dto.Logger = logs
	require.NoError(t, AppConfigInjector{}.Setup(dto))
	injected, err := container.Get[Logger](dto.ModuleContainer, LoggerID)
	require.NoError(t, err)
	assert.Same(t, logs, injected)
}

func TestExportsSetup(t *testing.T) {
	dto := setupDTO(PhasePre, DatabaseModule{})
	require.NoError(t, DatabaseModule{}.Register(dto.ModuleContainer))
	require.NoError(t, ExportsSetup{}.Setup(dto))

	d, err := dto.RootContainer.GetServiceDefinition(dbConnectionID)
	require.NoError(t, err)
	assert.IsType(t, container.ViaContainerResolver{}, d.Resolver())
	assert.Same(t, dto.ModuleContainer, d.Value())

	fromRoot, err := dto.RootContainer.Get(dbConnectionID)
	require.NoError(t, err)
	fromModule, err := dto.ModuleContainer.Get(dbConnectionID)
	require.NoError(t, err)
	assert.Same(t, fromModule, fromRoot)

	require.NoError(t, ExportsSetup{}.Setup(dto), "re-exporting from the same module is allowed")
}

func TestExportsSetup_Collision(t *testing.T) {
	dto := setupDTO(PhasePre, DatabaseModule{})
	require.NoError(t, ExportsSetup{}.Setup(dto))

	replica := setupDTO(PhasePre, ReplicaModule{})
	replica.RootContainer = dto.RootContainer
	err := ExportsSetup{}.Setup(replica)
	require.ErrorIs(t, err, ErrExportCollision)

	var collision *ExportCollisionError
	require.True(t, errors.As(err, &collision))
	assert.Equal(t, dbConnectionID, collision.ComponentID)
	assert.Equal(t, dbName, collision.ExistingModule)
	assert.Equal(t, NameOf[ReplicaModule](), collision.ConflictingModule)
}

func TestExportsSetup_CollisionWithRootService(t *testing.T) {
	dto := setupDTO(PhasePre, DatabaseModule{})
	dto.RootContainer.Set(dbConnectionID, "declared on root")

	var collision *ExportCollisionError
	require.True(t, errors.As(ExportsSetup{}.Setup(dto), &collision))
	assert.Equal(t, "root", collision.ExistingModule)
}

func TestImportsSetup(t *testing.T) {
	root := container.New()
	db := setupDTO(PhasePre, DatabaseModule{})
	db.RootContainer = root
	require.NoError(t, DatabaseModule{}.Register(db.ModuleContainer))
	require.NoError(t, ExportsSetup{}.Setup(db))

	users := setupDTO(PhasePre, UserModule{})
	users.RootContainer = root
	require.NoError(t, ImportsSetup{}.Setup(users))
	assert.False(t, users.ModuleContainer.Has(dbConnectionID), "pre phase does nothing")

	users.Phase = PhasePost
	err := ImportsSetup{}.Setup(users)
	require.ErrorIs(t, err, ErrMissingImport)
	assert.Contains(t, err.Error(), notifierID+" (parent module: "+notifyName+")")

	root.Set(notifierID, &Notifier{}, container.Raw)
	users.ModuleContainer = container.New()
	require.NoError(t, ImportsSetup{}.Setup(users))
	require.NoError(t, ImportsSetup{}.Setup(users), "linking the same definition again is a no-op")

	linked, err := users.ModuleContainer.GetServiceDefinition(dbConnectionID)
	require.NoError(t, err)
	owned, err := root.GetServiceDefinition(dbConnectionID)
	require.NoError(t, err)
	assert.Same(t, owned, linked)
}

func TestHasConfigSetup_RequiresLoader(t *testing.T) {
	dto := setupDTO(PhasePre, &MailerModule{})
	assert.ErrorIs(t, HasConfigSetup{}.Setup(dto), ErrLoaderUnavailable)

	dto.RootContainer.Set(config.LoaderID, "not a loader", container.Raw)
	assert.ErrorIs(t, HasConfigSetup{}.Setup(dto), ErrLoaderUnavailable)

	dto.Phase = PhasePost
	assert.NoError(t, HasConfigSetup{}.Setup(dto))
	assert.NoError(t, HasConfigSetup{}.Setup(setupDTO(PhasePre, DatabaseModule{})))
}

func TestHasConfigSetup_LoadsConfiguration(t *testing.T) {
	root := t.TempDir()
	configDir := filepath.Join(root, ConfigDir)
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "mailer.yaml"), []byte("host: smtp.shop\n"), 0o600))

	module := &MailerModule{}
	dto := setupDTO(PhasePre, module)
	dto.AppConfig = config.ForAppRoot(root)
	dto.RootContainer.Set(config.LoaderID, config.NewLoader(configDir, dto.AppConfig.Ambient), container.Raw)

	require.NoError(t, HasConfigSetup{}.Setup(dto))

	cfg, ok := config.As[*MailerConfig](module.Config())
	require.True(t, ok)
	assert.Equal(t, "smtp.shop", cfg.Host)
	assert.Equal(t, 25, cfg.Port)
	assert.Equal(t, root, cfg.AppRoot)
	assert.Equal(t, filepath.Join(root, "cache"), cfg.CachePath)

	seeded, err := container.Resolve[*MailerConfig](dto.ModuleContainer)
	require.NoError(t, err)
	assert.Same(t, cfg, seeded)
}

func TestHasConfigSetup_InvalidFile(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "mailer.yaml"), []byte("host: \"\"\n"), 0o600))

	dto := setupDTO(PhasePre, &MailerModule{})
	dto.RootContainer.Set(config.LoaderID, config.NewLoader(configDir, dto.AppConfig.Ambient), container.Raw)

	assert.ErrorIs(t, HasConfigSetup{}.Setup(dto), config.ErrInvalidConfig)
}
