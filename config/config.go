package config

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Mail    MailConfig
	Booking BookingConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type MailConfig struct {
	SendGridAPIKey string
	FromAddress    string
	FromName       string
}

// BookingConfig carries booking rules that are data, not code:
// the sterilization service is identified by a configured UUID and the
// fallback slot is "next calendar day at DefaultSlotHour".
type BookingConfig struct {
	SterilizationServiceID uuid.UUID
	DefaultSlotHour        int
	SlotHoldTTL            time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	// An invalid or missing UUID leaves the sterilization rule disabled (uuid.Nil).
	sterilizationID, err := uuid.Parse(viper.GetString("BOOKING_STERILIZATION_SERVICE_ID"))
	if err != nil {
		sterilizationID = uuid.Nil
	}

	defaultSlotHour := viper.GetInt("BOOKING_DEFAULT_SLOT_HOUR")
	if defaultSlotHour <= 0 || defaultSlotHour > 23 {
		defaultSlotHour = 9
	}

	slotHoldTTL, err := time.ParseDuration(viper.GetString("BOOKING_SLOT_HOLD_TTL"))
	if err != nil {
		slotHoldTTL = 30 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Mail: MailConfig{
			SendGridAPIKey: viper.GetString("MAIL_SENDGRID_API_KEY"),
			FromAddress:    viper.GetString("MAIL_FROM_ADDRESS"),
			FromName:       viper.GetString("MAIL_FROM_NAME"),
		},
		Booking: BookingConfig{
			SterilizationServiceID: sterilizationID,
			DefaultSlotHour:        defaultSlotHour,
			SlotHoldTTL:            slotHoldTTL,
		},
	}

	return config, nil
}
