package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/openrescue/rescuemap-api/schema"
	"github.com/openrescue/rescuemap-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("rescuemap")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	dbConfig, err := store.LoadDBConfig()
	if err != nil {
		panic(err)
	}

	dsn, err := dbConfig.DSN()
	if err != nil {
		panic(err)
	}

	db, err := gorm.Open("postgres", dsn)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := db.AutoMigrate(
		&schema.HelpRequest{},
		&schema.Migration{},
	).Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.HelpRequest{}).
		AddIndex("idx_help_requests_status", "status").Error; err != nil {
		panic(err)
	}

	if err := schema.RunMigrations(db); err != nil {
		panic(err)
	}
}
