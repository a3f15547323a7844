package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/paw-chain/prizesavings/x/prizepool/types"
)

// GetQueryCmd returns the cli query commands for the prizepool module
func GetQueryCmd() *cobra.Command {
	prizepoolQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the prizepool module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	prizepoolQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryPool(),
		GetCmdQueryPools(),
		GetCmdQueryBalance(),
		GetCmdQueryTickets(),
		GetCmdQueryDepositors(),
		GetCmdQueryLastDraw(),
	)

	return prizepoolQueryCmd
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current prizepool module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Params(context.Background(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPool returns the command to query a pool by ID
func GetCmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [pool-id]",
		Short: "Query a prize pool by ID",
		Long: `Query a prize pool: period, totals, prize fund, lender state, draw nonce.

Example:
  $ pawd query prizepool pool 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool-id: %s", args[0])
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Pool(context.Background(), &types.QueryPoolRequest{PoolId: poolID})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPools returns the command to query all pools
func GetCmdQueryPools() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "Query all prize pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Pools(context.Background(), &types.QueryPoolsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryBalance returns the command to query a depositor's principal
func GetCmdQueryBalance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance [pool-id] [address]",
		Short: "Query a depositor's locked principal in a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool-id: %s", args[0])
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Balance(context.Background(), &types.QueryBalanceRequest{
				PoolId:  poolID,
				Address: args[1],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryTickets returns the command to query a depositor's tickets
func GetCmdQueryTickets() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tickets [pool-id] [address]",
		Short: "Query a depositor's ticket weight in a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool-id: %s", args[0])
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Tickets(context.Background(), &types.QueryTicketsRequest{
				PoolId:  poolID,
				Address: args[1],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryDepositors returns the command to query a pool's depositor list
func GetCmdQueryDepositors() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "depositors [pool-id]",
		Short: "Query a pool's depositors in draw order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool-id: %s", args[0])
			}

			limit, err := cmd.Flags().GetUint64("limit")
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Depositors(context.Background(), &types.QueryDepositorsRequest{
				PoolId: poolID,
				Limit:  limit,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	cmd.Flags().Uint64("limit", 0, "maximum number of depositors to return")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryLastDraw returns the command to query a pool's last draw
func GetCmdQueryLastDraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "last-draw [pool-id]",
		Short: "Query a pool's most recent draw result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool-id: %s", args[0])
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.LastDraw(context.Background(), &types.QueryLastDrawRequest{PoolId: poolID})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
