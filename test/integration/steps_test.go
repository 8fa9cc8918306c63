//go:build integration

package integration

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cucumber/godog"
)

// asInt reads a JSON amount that may arrive as a number or as a quoted
// decimal string.
func asInt(value any) (int, error) {
	switch v := value.(type) {
	case float64:
		return int(v), nil
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("not a numeric value: %q", v)
		}
		return int(parsed), nil
	default:
		return 0, fmt.Errorf("not a numeric value: %v", value)
	}
}

func registerSteps(sc *godog.ScenarioContext, suite func() *apiSuite) {
	sc.Step(`^a registered user "([^"]*)" with password "([^"]*)"$`, func(email, password string) error {
		s := suite()
		if err := s.request("POST", "/api/v1/auth/register", map[string]any{
			"email":    email,
			"name":     "Test User",
			"password": password,
		}); err != nil {
			return err
		}
		if s.lastStatus != 201 {
			return fmt.Errorf("registration failed with status %d: %v", s.lastStatus, s.lastBody)
		}
		token, ok := s.lastBody["accessToken"].(string)
		if !ok {
			return fmt.Errorf("no access token in response: %v", s.lastBody)
		}
		s.accessToken = token
		return nil
	})

	sc.Step(`^the user creates an? "(income|expense)" of (\d+) on account "([^"]*)" dated "([^"]*)"$`, func(txnType string, amount int, account, date string) error {
		s := suite()
		return s.createTransaction(map[string]any{
			"type":    txnType,
			"amount":  amount,
			"date":    date,
			"account": account,
		})
	})

	sc.Step(`^the user creates a "([^"]*)" expense of (\d+) for division "([^"]*)" dated "([^"]*)"$`, func(category string, amount int, division, date string) error {
		s := suite()
		return s.createTransaction(map[string]any{
			"type":     "expense",
			"amount":   amount,
			"date":     date,
			"account":  "Cash",
			"category": category,
			"division": division,
		})
	})

	sc.Step(`^the user creates a transfer of (\d+) from "([^"]*)" to "([^"]*)" dated "([^"]*)"$`, func(amount int, from, to, date string) error {
		s := suite()
		return s.createTransaction(map[string]any{
			"type":        "transfer",
			"amount":      amount,
			"date":        date,
			"fromAccount": from,
			"toAccount":   to,
		})
	})

	sc.Step(`^the user creates a described transfer of (\d+) from "([^"]*)" to "([^"]*)" dated "([^"]*)"$`, func(amount int, from, to, date string) error {
		s := suite()
		return s.createTransaction(map[string]any{
			"type":        "transfer",
			"amount":      amount,
			"date":        date,
			"description": "External payment",
			"fromAccount": from,
			"toAccount":   to,
		})
	})

	sc.Step(`^(\d+) hours pass$`, func(hours int) error {
		suite().clock.Advance(time.Duration(hours) * time.Hour)
		return nil
	})

	sc.Step(`^the user updates the last transaction amount to (\d+)$`, func(amount int) error {
		s := suite()
		draft := make(map[string]any, len(s.lastDraft))
		for key, value := range s.lastDraft {
			draft[key] = value
		}
		draft["amount"] = amount
		return s.request("PUT", "/api/v1/transactions/"+s.lastTxnID, draft)
	})

	sc.Step(`^the user deletes the last transaction$`, func() error {
		s := suite()
		return s.request("DELETE", "/api/v1/transactions/"+s.lastTxnID, nil)
	})

	sc.Step(`^the balance of "([^"]*)" is (-?\d+)$`, func(account string, want int) error {
		s := suite()
		if err := s.request("GET", "/api/v1/balances", nil); err != nil {
			return err
		}
		if s.lastStatus != 200 {
			return fmt.Errorf("balances failed with status %d: %v", s.lastStatus, s.lastBody)
		}
		balances, ok := s.lastBody["balances"].([]any)
		if !ok {
			return fmt.Errorf("no balances in response: %v", s.lastBody)
		}
		for _, raw := range balances {
			entry, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if entry["account"] == account {
				got, err := asInt(entry["balance"])
				if err != nil {
					return fmt.Errorf("balance of %s: %w", account, err)
				}
				if got != want {
					return fmt.Errorf("balance of %s = %d, want %d", account, got, want)
				}
				return nil
			}
		}
		return fmt.Errorf("account %s not in balances: %v", account, s.lastBody)
	})

	sc.Step(`^the last transaction amount is (\d+)$`, func(want int) error {
		s := suite()
		if err := s.request("GET", "/api/v1/transactions", nil); err != nil {
			return err
		}
		transactions, ok := s.lastBody["transactions"].([]any)
		if !ok {
			return fmt.Errorf("no transactions in response: %v", s.lastBody)
		}
		for _, raw := range transactions {
			entry, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if entry["id"] == s.lastTxnID {
				got, err := asInt(entry["amount"])
				if err != nil {
					return err
				}
				if got != want {
					return fmt.Errorf("amount = %d, want %d", got, want)
				}
				return nil
			}
		}
		return fmt.Errorf("transaction %s not found", s.lastTxnID)
	})

	sc.Step(`^the user creates a budget of (\d+) for "([^"]*)" category "([^"]*)" division "([^"]*)"$`, func(amount int, month, category, division string) error {
		s := suite()
		return s.request("POST", "/api/v1/budgets", map[string]any{
			"month":        month,
			"category":     category,
			"division":     division,
			"budgetAmount": amount,
		})
	})

	sc.Step(`^the user lists budgets for "([^"]*)"$`, func(month string) error {
		return suite().request("GET", "/api/v1/budgets?month="+month, nil)
	})

	sc.Step(`^the listed budget for "([^"]*)" shows (\d+) spent and (\d+) remaining$`, func(category string, spent, remaining int) error {
		s := suite()
		budgets, ok := s.lastBody["budgets"].([]any)
		if !ok {
			return fmt.Errorf("no budgets in response: %v", s.lastBody)
		}
		for _, raw := range budgets {
			entry, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if entry["category"] == category {
				gotSpent, err := asInt(entry["spentAmount"])
				if err != nil {
					return err
				}
				gotRemaining, err := asInt(entry["remainingAmount"])
				if err != nil {
					return err
				}
				if gotSpent != spent || gotRemaining != remaining {
					return fmt.Errorf("budget %s spent/remaining = %d/%d, want %d/%d",
						category, gotSpent, gotRemaining, spent, remaining)
				}
				return nil
			}
		}
		return fmt.Errorf("budget for %s not listed: %v", category, s.lastBody)
	})

	sc.Step(`^the request succeeds$`, func() error {
		s := suite()
		if s.lastStatus < 200 || s.lastStatus > 299 {
			return fmt.Errorf("request failed with status %d: %v", s.lastStatus, s.lastBody)
		}
		return nil
	})

	sc.Step(`^the request fails with status (\d+) and code "([^"]*)"$`, func(status int, code string) error {
		s := suite()
		if s.lastStatus != status {
			return fmt.Errorf("status = %d, want %d (body %v)", s.lastStatus, status, s.lastBody)
		}
		if got, _ := s.lastBody["code"].(string); got != code {
			return fmt.Errorf("code = %q, want %q", got, code)
		}
		return nil
	})
}

// createTransaction posts a transaction and remembers its ID and draft so
// later steps can amend it.
func (s *apiSuite) createTransaction(draft map[string]any) error {
	if err := s.request("POST", "/api/v1/transactions", draft); err != nil {
		return err
	}
	if s.lastStatus == 201 {
		if id, ok := s.lastBody["id"].(string); ok {
			s.lastTxnID = id
			s.lastDraft = draft
		}
	}
	return nil
}
