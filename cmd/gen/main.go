// Command gen generates type-safe gorm/gen query code for the locator models
// into internal/infra/persistence/postgres/query. The output is not checked in.
package main

import (
	"locator/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ProviderModel{},
		model.WorkingHoursModel{},
		model.AppointmentModel{},
		model.SearchLogModel{},
		model.AppointmentEventModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
