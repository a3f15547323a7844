package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/paw-chain/prizesavings/x/prizepool/types"
)

// GetTxCmd returns the transaction commands for the prizepool module
func GetTxCmd() *cobra.Command {
	prizepoolTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Prizepool transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	prizepoolTxCmd.AddCommand(
		CmdCreatePool(),
		CmdDeposit(),
		CmdWithdraw(),
		CmdSetLenderPool(),
		CmdSupplyToLender(),
		CmdWithdrawFromLender(),
		CmdHarvestYield(),
		CmdExecuteDraw(),
	)

	return prizepoolTxCmd
}

func parseAmount(arg, name string) (math.Int, error) {
	amount, ok := math.NewIntFromString(arg)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid %s: %s (must be integer base units)", name, arg)
	}
	if !amount.IsPositive() {
		return math.Int{}, fmt.Errorf("%s must be positive", name)
	}
	return amount, nil
}

// CmdCreatePool returns a CLI command handler for initializing a prize pool
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pool [denom] [period-days]",
		Short: "Initialize a prize-savings pool for a denom and lock period",
		Long: `Initialize a prize-savings pool. The signer becomes the pool admin.

Example:
  $ pawd tx prizepool create-pool upaw 7 --from mykey
  $ pawd tx prizepool create-pool upaw 30 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			periodDays, err := cast.ToUint32E(args[1])
			if err != nil {
				return fmt.Errorf("invalid period-days: %s (must be 1-365)", args[1])
			}

			msg := types.NewMsgCreatePool(clientCtx.GetFromAddress().String(), args[0], periodDays)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDeposit returns a CLI command handler for depositing into a pool
func CmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [pool-id] [amount]",
		Short: "Lock principal into a prize pool",
		Long: `Lock principal into a prize pool. Tickets amount x period_days are issued.

Example:
  $ pawd tx prizepool deposit 1 1000000000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool-id: %s", args[0])
			}

			amount, err := parseAmount(args[1], "amount")
			if err != nil {
				return err
			}

			msg := types.NewMsgDeposit(clientCtx.GetFromAddress().String(), poolID, amount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdraw returns a CLI command handler for withdrawing principal
func CmdWithdraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [pool-id] [amount]",
		Short: "Withdraw principal from a prize pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool-id: %s", args[0])
			}

			amount, err := parseAmount(args[1], "amount")
			if err != nil {
				return err
			}

			msg := types.NewMsgWithdraw(clientCtx.GetFromAddress().String(), poolID, amount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetLenderPool returns a CLI command handler for configuring the lender
func CmdSetLenderPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-lender-pool [pool-id] [lender-address]",
		Short: "Configure the external lending pool (admin only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool-id: %s", args[0])
			}

			msg := types.NewMsgSetLenderPool(clientCtx.GetFromAddress().String(), poolID, args[1])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSupplyToLender returns a CLI command handler for relending principal
func CmdSupplyToLender() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "supply-to-lender [pool-id] [amount]",
		Short: "Supply undeployed principal to the lender (admin only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool-id: %s", args[0])
			}

			amount, err := parseAmount(args[1], "amount")
			if err != nil {
				return err
			}

			msg := types.NewMsgSupplyToLender(clientCtx.GetFromAddress().String(), poolID, amount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawFromLender returns a CLI command handler for recalling principal
func CmdWithdrawFromLender() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-from-lender [pool-id] [amount] [min-return]",
		Short: "Recall principal from the lender with a slippage guard (admin only)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool-id: %s", args[0])
			}

			amount, err := parseAmount(args[1], "amount")
			if err != nil {
				return err
			}

			minReturn, ok := math.NewIntFromString(args[2])
			if !ok || minReturn.IsNegative() {
				return fmt.Errorf("invalid min-return: %s", args[2])
			}

			msg := types.NewMsgWithdrawFromLender(clientCtx.GetFromAddress().String(), poolID, amount, minReturn)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdHarvestYield returns a CLI command handler for realizing lender yield
func CmdHarvestYield() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "harvest-yield [pool-id] [amount] [min-return]",
		Short: "Harvest lender yield into the prize fund (admin only)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool-id: %s", args[0])
			}

			amount, err := parseAmount(args[1], "amount")
			if err != nil {
				return err
			}

			minReturn, ok := math.NewIntFromString(args[2])
			if !ok || minReturn.IsNegative() {
				return fmt.Errorf("invalid min-return: %s", args[2])
			}

			msg := types.NewMsgHarvestYield(clientCtx.GetFromAddress().String(), poolID, amount, minReturn)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdExecuteDraw returns a CLI command handler for triggering a prize draw
func CmdExecuteDraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute-draw [pool-id]",
		Short: "Execute a prize draw, paying the prize fund to one weighted-random winner (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool-id: %s", args[0])
			}

			msg := types.NewMsgExecuteDraw(clientCtx.GetFromAddress().String(), poolID)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
