// main.go - accumulator CLI: a local operator tool over the accum binding
// surface, exercising key generation, accumulation, membership and
// non-membership proofs, and a store health check.
//
// Usage:
//
//	accumulator keygen
//	accumulator new
//	accumulator add <payload>
//	accumulator bulkadd <payload> [payload...]
//	accumulator export
//	accumulator prove <payload>
//	accumulator verify <payload> <proof-file> [nonce-hex]
//	accumulator nonmember <payload>
//	accumulator status
//	accumulator demo
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/vaultmesh/paccum/accum"
	"github.com/vaultmesh/paccum/internal/core"
)

func main() {
	configPath := flag.String("config", "accumulator.json", "path to the CLI config file")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: accumulator <keygen|new|add|bulkadd|export|prove|verify|nonmember|status|demo> [args...]")
		os.Exit(2)
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger, err := NewLogger(cfg.LogLevel, cfg.LogFile, cfg.AuditLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	stats := NewStatsCollector()
	cmd, rest := args[0], args[1:]

	var cmdErr error
	switch cmd {
	case "keygen":
		cmdErr = stats.Timed("keygen", func() error { return cmdKeygen(cfg, logger) })
	case "new":
		cmdErr = stats.Timed("new", func() error { return cmdNew(cfg, logger) })
	case "add":
		cmdErr = stats.Timed("add", func() error { return cmdAdd(cfg, logger, rest) })
	case "bulkadd":
		cmdErr = stats.Timed("bulkadd", func() error { return cmdBulkAdd(cfg, logger, rest) })
	case "export":
		cmdErr = stats.Timed("export", func() error { return cmdExport(cfg) })
	case "prove":
		cmdErr = stats.Timed("prove", func() error { return cmdProve(cfg, logger, rest) })
	case "verify":
		cmdErr = stats.Timed("verify", func() error { return cmdVerify(cfg, rest) })
	case "nonmember":
		cmdErr = stats.Timed("nonmember", func() error { return cmdNonmember(cfg, rest) })
	case "status":
		cmdErr = cmdStatus(cfg)
	case "demo":
		cmdErr = cmdDemo(cfg, logger, stats)
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", cmd)
		os.Exit(2)
	}

	if cmdErr != nil {
		logger.Fatal("command failed", cmdErr, map[string]interface{}{"command": cmd})
	}
}

func cmdKeygen(cfg *Config, logger *Logger) error {
	skBytes, err := accum.GenerateKey()
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.KeyPath, skBytes, 0600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	sk, err := core.DeserializeSecretKey(skBytes)
	if err != nil {
		return err
	}
	pkBytes := core.SerializePublicKey(core.DerivePublicKey(sk))
	if err := os.WriteFile(cfg.PublicKeyPath, pkBytes, 0644); err != nil {
		return fmt.Errorf("failed to write public key file: %w", err)
	}
	logger.Audit("keygen", map[string]interface{}{"key_path": cfg.KeyPath})
	fmt.Println("wrote", cfg.KeyPath, "and", cfg.PublicKeyPath)
	return nil
}

func cmdNew(cfg *Config, logger *Logger) error {
	skBytes, err := os.ReadFile(cfg.KeyPath)
	if err != nil {
		return fmt.Errorf("failed to read key file (run keygen first): %w", err)
	}
	h, err := accum.NewAccumulator(skBytes)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.AccumulatorPath, h.Export(), 0644); err != nil {
		return fmt.Errorf("failed to write accumulator file: %w", err)
	}
	logger.Audit("new_accumulator", map[string]interface{}{"accumulator_path": cfg.AccumulatorPath})
	fmt.Println("wrote", cfg.AccumulatorPath)
	return nil
}

func cmdAdd(cfg *Config, logger *Logger, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: accumulator add <payload>")
	}
	skBytes, err := os.ReadFile(cfg.KeyPath)
	if err != nil {
		return fmt.Errorf("failed to read key file: %w", err)
	}
	accBytes, err := os.ReadFile(cfg.AccumulatorPath)
	if err != nil {
		return fmt.Errorf("failed to read accumulator file (run new first): %w", err)
	}

	sk, err := core.DeserializeSecretKey(skBytes)
	if err != nil {
		return err
	}
	acc, err := core.Deserialize(accBytes)
	if err != nil {
		return err
	}
	acc.Add(sk, core.ElementFromPayload([]byte(args[0])))

	if err := os.WriteFile(cfg.AccumulatorPath, core.Serialize(acc), 0644); err != nil {
		return fmt.Errorf("failed to write accumulator file: %w", err)
	}
	logger.Audit("add_element", map[string]interface{}{"payload": args[0]})
	fmt.Println("added", args[0])
	return nil
}

// cmdBulkAdd absorbs many payloads in one accumulator file write, hashing
// them to Elements concurrently via accum.Handle.AddElements before
// serialising the accumulator back to disk. Payloads are absorbed in the
// order given on the command line.
func cmdBulkAdd(cfg *Config, logger *Logger, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: accumulator bulkadd <payload> [payload...]")
	}
	skBytes, err := os.ReadFile(cfg.KeyPath)
	if err != nil {
		return fmt.Errorf("failed to read key file: %w", err)
	}
	accBytes, err := os.ReadFile(cfg.AccumulatorPath)
	if err != nil {
		return fmt.Errorf("failed to read accumulator file (run new first): %w", err)
	}

	h, err := accum.LoadAccumulator(skBytes, accBytes)
	if err != nil {
		return err
	}

	payloads := make([][]byte, len(args))
	for i, a := range args {
		payloads[i] = []byte(a)
	}
	if err := h.AddElements(payloads); err != nil {
		return err
	}

	if err := os.WriteFile(cfg.AccumulatorPath, h.Export(), 0644); err != nil {
		return fmt.Errorf("failed to write accumulator file: %w", err)
	}
	logger.Audit("bulk_add_element", map[string]interface{}{"count": len(args)})
	fmt.Printf("added %d elements\n", len(args))
	return nil
}

func cmdExport(cfg *Config) error {
	accBytes, err := os.ReadFile(cfg.AccumulatorPath)
	if err != nil {
		return fmt.Errorf("failed to read accumulator file: %w", err)
	}
	fmt.Println(hex.EncodeToString(accBytes))
	return nil
}

func cmdProve(cfg *Config, logger *Logger, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: accumulator prove <payload>")
	}
	skBytes, err := os.ReadFile(cfg.KeyPath)
	if err != nil {
		return fmt.Errorf("failed to read key file: %w", err)
	}
	accBytes, err := os.ReadFile(cfg.AccumulatorPath)
	if err != nil {
		return fmt.Errorf("failed to read accumulator file: %w", err)
	}

	h, err := accum.LoadAccumulator(skBytes, accBytes)
	if err != nil {
		return err
	}

	payload := []byte(args[0])
	proofBytes, nonce, err := h.GetMembershipProof(payload)
	if err != nil {
		return err
	}

	proofPath := cfg.AccumulatorPath + ".proof"
	if err := os.WriteFile(proofPath, proofBytes, 0644); err != nil {
		return fmt.Errorf("failed to write proof file: %w", err)
	}

	session := &Session{LastPayload: payload, LastNonce: nonce}
	if err := SaveSession(session, cfg.SessionPath); err != nil {
		return err
	}

	logger.Audit("get_membership_proof", map[string]interface{}{"payload": args[0], "proof_path": proofPath})
	fmt.Println("wrote", proofPath)
	fmt.Println("nonce", hex.EncodeToString(nonce[:]))
	return nil
}

// cmdVerify takes an explicit nonce-hex as its optional third argument, or,
// when omitted, recovers the nonce from the session file a prior `prove`
// invocation wrote, per SPEC_FULL.md §4.6's session-recall design.
func cmdVerify(cfg *Config, args []string) error {
	if len(args) != 2 && len(args) != 3 {
		return fmt.Errorf("usage: accumulator verify <payload> <proof-file> [nonce-hex]")
	}
	payload, proofPath := []byte(args[0]), args[1]

	var nonce [16]byte
	if len(args) == 3 {
		nonceBytes, err := hex.DecodeString(args[2])
		if err != nil || len(nonceBytes) != 16 {
			return fmt.Errorf("nonce must be 32 hex characters")
		}
		copy(nonce[:], nonceBytes)
	} else {
		session, err := LoadSession(cfg.SessionPath)
		if err != nil {
			return err
		}
		if string(session.LastPayload) != string(payload) {
			return fmt.Errorf("no session nonce recorded for payload %q (run prove first, or pass nonce-hex explicitly)", args[0])
		}
		nonce = session.LastNonce
	}

	accBytes, err := os.ReadFile(cfg.AccumulatorPath)
	if err != nil {
		return fmt.Errorf("failed to read accumulator file: %w", err)
	}
	pkBytes, err := os.ReadFile(cfg.PublicKeyPath)
	if err != nil {
		return fmt.Errorf("failed to read public key file: %w", err)
	}
	proofBytes, err := os.ReadFile(proofPath)
	if err != nil {
		return fmt.Errorf("failed to read proof file: %w", err)
	}

	ok, err := accum.VerifyMembershipProof(accBytes, proofBytes, pkBytes, nonce, payload)
	if err != nil {
		return err
	}
	fmt.Println(ok)
	return nil
}

func cmdNonmember(cfg *Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: accumulator nonmember <payload>")
	}
	skBytes, err := os.ReadFile(cfg.KeyPath)
	if err != nil {
		return fmt.Errorf("failed to read key file: %w", err)
	}
	accBytes, err := os.ReadFile(cfg.AccumulatorPath)
	if err != nil {
		return fmt.Errorf("failed to read accumulator file: %w", err)
	}
	pkBytes, err := os.ReadFile(cfg.PublicKeyPath)
	if err != nil {
		return fmt.Errorf("failed to read public key file: %w", err)
	}

	payload := []byte(args[0])
	witnessBytes, err := accum.IssueNonMembershipWitness(accBytes, skBytes, payload)
	if err != nil {
		return err
	}
	ok, err := accum.VerifyNonMembershipWitness(witnessBytes, accBytes, pkBytes, payload)
	if err != nil {
		return err
	}
	fmt.Println(ok)
	return nil
}

func cmdStatus(cfg *Config) error {
	health := CheckStoreHealth(cfg)
	RenderStoreHealth(health)
	return nil
}

// cmdDemo runs keygen, new, add, prove and verify in sequence against a set
// of throwaway paths, then prints a stats summary — an end-to-end smoke run
// matching S1 from the testable-properties list.
func cmdDemo(cfg *Config, logger *Logger, stats *StatsCollector) error {
	demoCfg := &Config{
		KeyPath:         cfg.KeyPath + ".demo",
		AccumulatorPath: cfg.AccumulatorPath + ".demo",
		PublicKeyPath:   cfg.PublicKeyPath + ".demo",
		SessionPath:     cfg.SessionPath + ".demo",
		LogLevel:        cfg.LogLevel,
	}
	defer func() {
		os.Remove(demoCfg.KeyPath)
		os.Remove(demoCfg.AccumulatorPath)
		os.Remove(demoCfg.PublicKeyPath)
		os.Remove(demoCfg.SessionPath)
		os.Remove(demoCfg.AccumulatorPath + ".proof")
	}()

	if err := stats.Timed("keygen", func() error { return cmdKeygen(demoCfg, logger) }); err != nil {
		return err
	}
	if err := stats.Timed("new", func() error { return cmdNew(demoCfg, logger) }); err != nil {
		return err
	}
	if err := stats.Timed("add", func() error { return cmdAdd(demoCfg, logger, []string{"demo-element"}) }); err != nil {
		return err
	}
	if err := stats.Timed("prove", func() error { return cmdProve(demoCfg, logger, []string{"demo-element"}) }); err != nil {
		return err
	}
	if err := stats.Timed("verify", func() error {
		return cmdVerify(demoCfg, []string{"demo-element", demoCfg.AccumulatorPath + ".proof"})
	}); err != nil {
		return err
	}

	stats.RenderSummary()
	return nil
}
