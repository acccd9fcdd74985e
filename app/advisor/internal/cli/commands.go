package cli

import (
	"github.com/spf13/cobra"

	"github.com/iWorld-y/career_advisor/app/advisor/internal/conf"
	"github.com/iWorld-y/career_advisor/app/advisor/internal/data"
	"github.com/iWorld-y/career_advisor/app/advisor/internal/domain"
	"github.com/iWorld-y/career_advisor/app/advisor/internal/usecase"
)

func collegesCmd(opts *options) *cobra.Command {
	var location, domainName string

	cmd := &cobra.Command{
		Use:   "colleges",
		Short: "List colleges in a city or state that offer a course domain",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bc, err := loadBootstrap(opts.confPath)
			if err != nil {
				return err
			}
			logger, err := newLogger(opts.debug)
			if err != nil {
				return err
			}
			sec, err := conf.LoadSecrets()
			if err != nil {
				return err
			}
			d, cleanup, err := data.NewData(sec, bc.Data, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			uc := usecase.NewCollegeUseCase(data.NewCollegeRepo(d, logger), logger)
			matches, err := uc.Match(cmd.Context(), location, domainName)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), matches)
			}
			renderColleges(cmd.OutOrStdout(), location, domainName, matches)
			return nil
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "city or state")
	cmd.Flags().StringVarP(&domainName, "domain", "d", "", "course domain, e.g. \"Engineering & Technology\"")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("domain")
	return cmd
}

func schemesCmd(opts *options) *cobra.Command {
	var f domain.SchemeFilter

	cmd := &cobra.Command{
		Use:   "schemes",
		Short: "Filter government schemes by eligibility, level, category and tags",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bc, err := loadBootstrap(opts.confPath)
			if err != nil {
				return err
			}
			logger, err := newLogger(opts.debug)
			if err != nil {
				return err
			}
			// 数据集独立于关系型存储，不需要 STORE_URL
			r, err := data.NewSchemeRepo(bc.Data, logger)
			if err != nil {
				return err
			}

			uc := usecase.NewSchemeUseCase(r, logger)
			schemes, err := uc.Filter(cmd.Context(), &f)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), schemes)
			}
			renderSchemes(cmd.OutOrStdout(), schemes)
			return nil
		},
	}

	cmd.Flags().StringVar(&f.Eligibility, "eligibility", "", "substring of the eligibility column")
	cmd.Flags().StringVar(&f.Level, "level", "", "substring of the scheme category column")
	cmd.Flags().StringVar(&f.Category, "category", "", "substring of the scheme category or tags column")
	cmd.Flags().StringSliceVarP(&f.Tags, "tag", "t", nil, "tag that must appear in the tags column, repeatable")
	return cmd
}

func suggestCmd(opts *options) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask the language model for a stream suggestion for one student",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bc, err := loadBootstrap(opts.confPath)
			if err != nil {
				return err
			}
			logger, err := newLogger(opts.debug)
			if err != nil {
				return err
			}
			sec, err := conf.LoadSecrets()
			if err != nil {
				return err
			}
			d, cleanup, err := data.NewData(sec, bc.Data, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			gen, err := data.NewGenerator(bc.Llm, sec, logger)
			if err != nil {
				return err
			}
			uc := usecase.NewSuggestUseCase(data.NewProfileRepo(d, logger), gen, logger)
			text, err := uc.Suggest(cmd.Context(), userID)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), text)
			}
			renderSuggestion(cmd.OutOrStdout(), userID, text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "student user id (UUID)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
