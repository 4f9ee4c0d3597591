package main

import (
	"context"
	"flag"
	"os"
	"time"

	"frontdesk/di"
	"frontdesk/internal/domains/auth/model/dto"
	roomDto "frontdesk/internal/domains/room/model/dto"
	"frontdesk/shared/constant"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const provisionTimeout = time.Minute

func main() {
	logger.InitLogger()

	provisioner := di.InitializeProvisioner()

	logger.SetLogLevel(provisioner.Config)

	roomsFile := flag.String("rooms", provisioner.Config.Hotel.RoomsFile, "path to the rooms YAML file")
	skipStaff := flag.Bool("skip-staff", false, "do not create the front desk account")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), provisionTimeout)
	defer cancel()

	file, err := loadRooms(*roomsFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", *roomsFile).Msg("Failed to load rooms file")
	}

	if err := provisioner.Room.Provision(ctx, file.Rooms); err != nil {
		log.Fatal().Err(err).Msg("Failed to provision rooms")
	}

	log.Info().Int("rooms", len(file.Rooms)).Msg("Rooms provisioned")

	if *skipStaff || provisioner.Config.Hotel.StaffEmail == "" {
		return
	}

	created, err := provisioner.Auth.EnsureStaff(ctx, dto.StaffAccount{
		Email:    provisioner.Config.Hotel.StaffEmail,
		Password: provisioner.Config.Hotel.StaffPass,
		Role:     constant.RoleManager,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to provision staff account")
	}

	log.Info().Bool("created", created).Str("email", provisioner.Config.Hotel.StaffEmail).Msg("Staff account ready")
}

func loadRooms(path string) (roomDto.ProvisionFile, error) {
	var file roomDto.ProvisionFile

	data, err := os.ReadFile(path)
	if err != nil {
		return file, err //nolint:wrapcheck
	}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, err //nolint:wrapcheck
	}

	return file, file.Validate()
}
