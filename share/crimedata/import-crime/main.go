package main

import (
	"flag"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/safestreets/safestreets-api/share/crimedata"
	"github.com/safestreets/safestreets-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("safestreets")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var datasetFile string
	flag.StringVar(&datasetFile, "f", "cleaned_crime_dataset.csv", "[optional] path of the dataset file")
	flag.Parse()

	ormDB, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}
	defer ormDB.Close()

	s := store.NewSafeStreetsStore(ormDB)
	if err := s.Setup(); err != nil {
		log.Panic(err)
	}

	count, err := crimedata.ImportCSV(s, datasetFile)
	if err != nil {
		log.Panic(err)
	}

	log.Infof("imported %d crime records from %s", count, datasetFile)
}
