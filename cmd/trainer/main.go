package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/tradetrainer/trainer-contract/contracts"
	"github.com/tradetrainer/trainer-contract/deploy"
	"github.com/tradetrainer/trainer-contract/grader"
	"github.com/tradetrainer/trainer-contract/rpc/trainer"
	"go.uber.org/zap"
)

const usage = `Usage: trainer <command> [flags]

Commands:
  deploy     deploy or update Trainer contract
  grade      check all validations of the exercise
  exercises  list exercises

Run 'trainer <command> -h' for command flags.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error

	switch os.Args[1] {
	case "deploy":
		err = runDeploy(os.Args[2:])
	case "grade":
		err = runGrade(os.Args[2:])
	case "exercises":
		err = runExercises(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

type commonFlags struct {
	rpc     *string
	wallet  *string
	account *string
}

func addCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		rpc:     fs.String("rpc", "", "Network address of the Neo RPC server"),
		wallet:  fs.String("wallet", "", "Path to the wallet file (password is read from "+passwordEnv+")"),
		account: fs.String("account", "", "Wallet account address (default account is used if empty)"),
	}
}

func (f commonFlags) connect() (*remoteBlockchain, error) {
	switch {
	case *f.rpc == "":
		return nil, fmt.Errorf("missing Neo RPC endpoint")
	case *f.wallet == "":
		return nil, fmt.Errorf("missing wallet")
	}

	acc, err := openAccount(*f.wallet, *f.account)
	if err != nil {
		return nil, err
	}

	return newRemoteBlockchain(*f.rpc, acc)
}

func runDeploy(args []string) error {
	fs := flag.NewFlagSet("deploy", flag.ExitOnError)
	cf := addCommonFlags(fs)
	dir := fs.String("contracts", ".", "Directory with compiled 'trainer' contract")
	authority := fs.String("authority", "", "Governance authority address (Neo committee if empty)")
	minValidations := fs.Int64("min-validations", 0, "Minimal validations capacity (contract default if zero)")
	_ = fs.Parse(args)

	c, err := contracts.GetTrainerFromDir(*dir)
	if err != nil {
		return err
	}

	b, err := cf.connect()
	if err != nil {
		return err
	}
	defer b.close()

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	prm := deploy.Prm{
		Logger:         logger,
		Blockchain:     b.rpc,
		Actor:          b.actor,
		NEF:            c.NEF,
		Manifest:       c.Manifest,
		MinValidations: *minValidations,
	}

	if *authority != "" {
		h, err := parseHash(*authority)
		if err != nil {
			return fmt.Errorf("authority: %w", err)
		}
		prm.Authority = &h
	}

	h, err := deploy.Deploy(context.Background(), prm)
	if err != nil {
		return err
	}

	log.Printf("Trainer contract is synchronized: %s (%s)\n", h.StringLE(), address.Uint160ToString(h))

	return nil
}

func runGrade(args []string) error {
	fs := flag.NewFlagSet("grade", flag.ExitOnError)
	cf := addCommonFlags(fs)
	contract := fs.String("contract", "", "Trainer contract script hash")
	exercise := fs.String("exercise", "", "Exercise address")
	batch := fs.Int("batch", grader.DefaultBatchSize, "Number of validations checked by a single transaction")
	_ = fs.Parse(args)

	contractHash, exerciseAddr, err := parseTargets(*contract, *exercise)
	if err != nil {
		return err
	}

	b, err := cf.connect()
	if err != nil {
		return err
	}
	defer b.close()

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	g := grader.New(grader.Prm{
		Logger:    logger,
		Contract:  contractHash,
		Reader:    trainer.NewReader(b.actor, contractHash),
		Actor:     b.actor,
		BatchSize: *batch,
	})

	events, err := g.CheckAll(context.Background(), exerciseAddr)
	if err != nil {
		return err
	}

	for _, e := range events {
		log.Printf("trader %s: performance %s\n", address.Uint160ToString(e.Trader), e.Performance)
	}

	return nil
}

func runExercises(args []string) error {
	fs := flag.NewFlagSet("exercises", flag.ExitOnError)
	cf := addCommonFlags(fs)
	contract := fs.String("contract", "", "Trainer contract script hash")
	sealed := fs.String("sealed", "", "Filter by sealed flag (true or false)")
	cid := fs.String("cid", "", "Filter by content identifier")
	limit := fs.Int("limit", 100, "Maximum number of listed exercises")
	_ = fs.Parse(args)

	contractHash, err := parseHash(*contract)
	if err != nil {
		return fmt.Errorf("contract: %w", err)
	}

	filter := trainer.ExerciseFilter{Cid: *cid}
	if *sealed != "" {
		v, err := strconv.ParseBool(*sealed)
		if err != nil {
			return fmt.Errorf("sealed: %w", err)
		}
		filter.Sealed = &v
	}

	b, err := cf.connect()
	if err != nil {
		return err
	}
	defer b.close()

	records, err := trainer.NewReader(b.actor, contractHash).ListExercises(filter, *limit)
	if err != nil {
		return err
	}

	for _, r := range records {
		if err := trainer.CheckExerciseBump(contractHash, r.Address, r.Exercise); err != nil {
			log.Printf("exercise %s: %v\n", r.Address.StringLE(), err)
			continue
		}
		fmt.Printf("%s\t%s\tsealed=%t\tvalidations=%d/%s\n", r.Address.StringLE(), r.Exercise.Cid,
			r.Exercise.Sealed, len(r.Exercise.Validations), r.Exercise.ValidationsCapacity)
	}

	return nil
}

func parseTargets(contract, exercise string) (util.Uint160, util.Uint160, error) {
	contractHash, err := parseHash(contract)
	if err != nil {
		return util.Uint160{}, util.Uint160{}, fmt.Errorf("contract: %w", err)
	}

	exerciseAddr, err := util.Uint160DecodeStringLE(exercise)
	if err != nil {
		return util.Uint160{}, util.Uint160{}, fmt.Errorf("exercise: %w", err)
	}

	return contractHash, exerciseAddr, nil
}
