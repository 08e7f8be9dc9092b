package main

import (
	"applyo/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.ConsentTokenModel{},
		model.APIKeyModel{},
		model.ApplicationModel{},
		model.DocumentMetadataModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
