package powermodule

import (
	"fmt"

	"github.com/GoCodeAlone/powermodule/config"
	"github.com/GoCodeAlone/powermodule/container"
)

// Fixture modules for an online shop: payments use orders, orders use
// users, users use the database and notifications.

const (
	dbConnectionID   = "db.connection"
	notifierID       = "notifier"
	userRepositoryID = "user.repository"
	orderServiceID   = "order.service"
	paymentGatewayID = "payment.gateway"
	internalAuditID  = "user.audit"
)

type Connection struct{ DSN string }

type Notifier struct{ Sent []string }

type UserRepository struct {
	DB       *Connection
	Notifier *Notifier
}

type OrderService struct{ Users *UserRepository }

type PaymentGateway struct{ Orders *OrderService }

type DatabaseModule struct{}

func (DatabaseModule) Exports() []string { return []string{dbConnectionID} }

func (DatabaseModule) Register(c *container.Container) error {
	c.Set(dbConnectionID, func() *Connection { return &Connection{DSN: "postgres://shop"} })
	return nil
}

type NotificationModule struct{}

func (NotificationModule) Exports() []string { return []string{notifierID} }

func (NotificationModule) Register(c *container.Container) error {
	c.Set(notifierID, func() *Notifier { return &Notifier{} })
	return nil
}

type UserModule struct{}

func (UserModule) Exports() []string { return []string{userRepositoryID} }

func (UserModule) Imports() []ImportItem {
	return []ImportItem{
		MustImport(DatabaseModule{}, dbConnectionID),
		MustImport(NotificationModule{}, notifierID),
	}
}

func (UserModule) Register(c *container.Container) error {
	c.Set(userRepositoryID, func(db *Connection, n *Notifier) *UserRepository {
		return &UserRepository{DB: db, Notifier: n}
	}).AddArguments(container.Ref(dbConnectionID), container.Ref(notifierID))
	c.Set(internalAuditID, "audit-log")
	return nil
}

type OrderModule struct{}

func (OrderModule) Exports() []string { return []string{orderServiceID} }

func (OrderModule) Imports() []ImportItem {
	return []ImportItem{MustImport(UserModule{}, userRepositoryID)}
}

func (OrderModule) Register(c *container.Container) error {
	c.Set(orderServiceID, func(users *UserRepository) *OrderService {
		return &OrderService{Users: users}
	}).AddArguments(userRepositoryID)
	return nil
}

type PaymentModule struct{}

func (PaymentModule) Exports() []string { return []string{paymentGatewayID} }

func (PaymentModule) Imports() []ImportItem {
	return []ImportItem{MustImport(OrderModule{}, orderServiceID)}
}

func (PaymentModule) Register(c *container.Container) error {
	c.Set(paymentGatewayID, func(orders *OrderService) *PaymentGateway {
		return &PaymentGateway{Orders: orders}
	}).AddArguments(container.Ref(orderServiceID))
	return nil
}

// ReplicaModule exports the same id as DatabaseModule.
type ReplicaModule struct{}

func (ReplicaModule) Exports() []string { return []string{dbConnectionID} }

func (ReplicaModule) Register(c *container.Container) error {
	c.Set(dbConnectionID, func() *Connection { return &Connection{DSN: "postgres://replica"} })
	return nil
}

// BadImportModule imports a service DatabaseModule does not export.
type BadImportModule struct{}

func (BadImportModule) Imports() []ImportItem {
	return []ImportItem{MustImport(DatabaseModule{}, "db.password")}
}
func (BadImportModule) Register(*container.Container) error { return nil }

// CycleAModule and CycleBModule import from each other.
type CycleAModule struct{}

func (CycleAModule) Exports() []string     { return []string{"a"} }
func (CycleAModule) Imports() []ImportItem { return []ImportItem{MustImport(CycleBModule{}, "b")} }
func (CycleAModule) Register(c *container.Container) error {
	c.Set("a", "A")
	return nil
}

type CycleBModule struct{}

func (CycleBModule) Exports() []string     { return []string{"b"} }
func (CycleBModule) Imports() []ImportItem { return []ImportItem{MustImport(CycleAModule{}, "a")} }
func (CycleBModule) Register(c *container.Container) error {
	c.Set("b", "B")
	return nil
}

// MailerModule is configurable.
type MailerModule struct {
	config.Holder
}

type MailerConfig struct {
	config.Ambient
	Host string `yaml:"host" json:"host" toml:"host" validate:"required"`
	Port int    `yaml:"port" json:"port" toml:"port"`
}

func (c *MailerConfig) ConfigFilename() string { return "mailer" }

type Mailer struct{ Addr string }

func (m *MailerModule) DefaultConfig() config.ModuleConfig {
	return &MailerConfig{Host: "localhost", Port: 25}
}

func (m *MailerModule) Exports() []string { return []string{"mailer"} }

func (m *MailerModule) Register(c *container.Container) error {
	c.Set("mailer", func(cfg *MailerConfig) *Mailer {
		return &Mailer{Addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)}
	})
	return nil
}

// FailingModule returns an error from Register.
type FailingModule struct{}

func (FailingModule) Register(*container.Container) error {
	return fmt.Errorf("database unreachable")
}

func shopCatalog() *Catalog {
	catalog := NewCatalog()
	if _, err := catalog.AddModule(
		DatabaseModule{}, NotificationModule{}, UserModule{}, OrderModule{}, PaymentModule{},
		ReplicaModule{}, CycleAModule{}, CycleBModule{}, FailingModule{}, BadImportModule{},
	); err != nil {
		panic(err)
	}
	return catalog
}
