package api

import (
	"github.com/color-game/colorimetry/config"
	"github.com/color-game/colorimetry/converter"
	"github.com/color-game/colorimetry/datastore"
	"github.com/color-game/colorimetry/scheduler"
)

type Application struct {
	Config         config.Config
	Converter      *converter.Service
	ConversionRepo datastore.ConversionRepository // nil when history is disabled
	Pruner         *scheduler.Pruner
}
