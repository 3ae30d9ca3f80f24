package auction

import (
	"fmt"
	"sort"

	"econlab/internal/econ"
)

// Mechanism identifies an auction format.
type Mechanism string

const (
	FirstPrice  Mechanism = "first_price"
	SecondPrice Mechanism = "second_price"
	English     Mechanism = "english"
	Dutch       Mechanism = "dutch"
)

// NoWinner is the Winner value when no bidder clears the reserve.
const NoWinner = -1

// Valuations is one private valuation per bidder; bidder identity is the
// slice index.
type Valuations []float64

func (v Valuations) Validate() error {
	if len(v) == 0 {
		return fmt.Errorf("at least one bidder required: %w", econ.ErrNoBidders)
	}
	for i, val := range v {
		if val < 0 {
			return fmt.Errorf("bidder %d has negative valuation %g: %w", i, val, econ.ErrInvalidDomain)
		}
	}
	return nil
}

func (v Valuations) highest() int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}

// Result is the uniform outcome record shared by all four mechanisms.
// Winner is NoWinner when nobody clears the reserve; in that case
// Efficiency is 0 and FinalPrice carries the last simulated price.
type Result struct {
	Mechanism Mechanism `json:"mechanism"`

	Winner     int     `json:"winner"`
	WinningBid float64 `json:"winning_bid"`
	Payment    float64 `json:"payment"`
	Revenue    float64 `json:"revenue"`

	WinnerSurplus float64 `json:"winner_surplus"`

	// Efficiency is 1 when the highest-valuation bidder won, else 0.
	// Always 1 for the incentive-compatible mechanisms (second-price,
	// English) when a winner exists.
	Efficiency float64 `json:"efficiency"`

	// Bids are the per-bidder equilibrium bids (sealed formats only).
	Bids []float64 `json:"bids,omitempty"`

	// FinalPrice is the terminal clock price (English and Dutch).
	FinalPrice float64 `json:"final_price,omitempty"`
}

func noWinner(m Mechanism, finalPrice float64, bids []float64) Result {
	return Result{Mechanism: m, Winner: NoWinner, Bids: bids, FinalPrice: finalPrice}
}

// RunFirstPrice runs a first-price sealed-bid auction. Bids follow the
// symmetric independent-private-value heuristic b_i = (n-1)/n * v_i; the
// highest bid at or above the reserve wins and pays its own bid.
func RunFirstPrice(vals Valuations, reserve float64) (Result, error) {
	if err := vals.Validate(); err != nil {
		return Result{}, err
	}

	n := float64(len(vals))
	shade := (n - 1) / n
	bids := make([]float64, len(vals))
	for i, v := range vals {
		bids[i] = shade * v
	}

	winner := NoWinner
	for i, b := range bids {
		if b < reserve {
			continue
		}
		if winner == NoWinner || b > bids[winner] {
			winner = i
		}
	}
	if winner == NoWinner {
		return noWinner(FirstPrice, reserve, bids), nil
	}

	bid := bids[winner]
	efficiency := 0.0
	if winner == vals.highest() {
		efficiency = 1
	}

	return Result{
		Mechanism:     FirstPrice,
		Winner:        winner,
		WinningBid:    bid,
		Payment:       bid,
		Revenue:       bid,
		WinnerSurplus: vals[winner] - bid,
		Efficiency:    efficiency,
		Bids:          bids,
	}, nil
}

// RunSecondPrice runs a second-price (Vickrey) sealed-bid auction.
// Truthful bidding is dominant, so bids equal valuations; the winner pays
// the second-highest qualifying bid, or the reserve with one qualifier.
// The mechanism is efficient by construction.
func RunSecondPrice(vals Valuations, reserve float64) (Result, error) {
	if err := vals.Validate(); err != nil {
		return Result{}, err
	}

	bids := append([]float64(nil), vals...)

	var qualifying []int
	for i, b := range bids {
		if b >= reserve {
			qualifying = append(qualifying, i)
		}
	}
	if len(qualifying) == 0 {
		return noWinner(SecondPrice, reserve, bids), nil
	}

	winner := qualifying[0]
	for _, i := range qualifying[1:] {
		if bids[i] > bids[winner] {
			winner = i
		}
	}

	payment := reserve
	if len(qualifying) > 1 {
		second := 0.0
		for _, i := range qualifying {
			if i != winner && bids[i] > second {
				second = bids[i]
			}
		}
		if second > payment {
			payment = second
		}
	}

	return Result{
		Mechanism:     SecondPrice,
		Winner:        winner,
		WinningBid:    bids[winner],
		Payment:       payment,
		Revenue:       payment,
		WinnerSurplus: vals[winner] - payment,
		Efficiency:    1, // truthful bidding allocates to the highest valuation
		Bids:          bids,
	}, nil
}

// RunEnglish simulates a discrete ascending-clock auction. The clock
// rises by increment from the reserve; bidders drop out once the price
// exceeds their valuation, and the auction ends with at most one bidder
// active. The winner pays roughly the second-highest valuation plus one
// increment.
func RunEnglish(vals Valuations, reserve, increment float64) (Result, error) {
	if err := vals.Validate(); err != nil {
		return Result{}, err
	}
	if increment <= 0 {
		return Result{}, fmt.Errorf("increment must be > 0, got %g: %w", increment, econ.ErrInvalidDomain)
	}

	var active []int
	for i, v := range vals {
		if v >= reserve {
			active = append(active, i)
		}
	}
	if len(active) == 0 {
		return noWinner(English, reserve, nil), nil
	}

	price := reserve
	for len(active) > 1 {
		next := active[:0]
		for _, i := range active {
			if vals[i] >= price+increment {
				next = append(next, i)
			}
		}
		active = next
		price += increment
	}
	if len(active) == 0 {
		return noWinner(English, price, nil), nil
	}

	winner := active[0]

	// Clock resolution aside, the winner pays just above the runner-up's
	// valuation.
	qualifying := make([]float64, 0, len(vals))
	for _, v := range vals {
		if v >= reserve {
			qualifying = append(qualifying, v)
		}
	}
	sort.Float64s(qualifying)
	payment := reserve
	if len(qualifying) > 1 {
		payment = qualifying[len(qualifying)-2] + increment
	}

	return Result{
		Mechanism:     English,
		Winner:        winner,
		WinningBid:    vals[winner],
		Payment:       payment,
		Revenue:       payment,
		WinnerSurplus: vals[winner] - payment,
		Efficiency:    1,
		FinalPrice:    payment,
	}, nil
}

// RunDutch simulates a descending-clock auction. The clock starts at
// startingPrice and falls by decrement; at each tick bidders are
// examined in valuation-descending order and the first whose valuation
// covers the current price buys at that price. The clock stopping at
// zero with no acceptance yields the no-winner sentinel.
func RunDutch(vals Valuations, startingPrice, decrement float64) (Result, error) {
	if err := vals.Validate(); err != nil {
		return Result{}, err
	}
	if decrement <= 0 {
		return Result{}, fmt.Errorf("decrement must be > 0, got %g: %w", decrement, econ.ErrInvalidDomain)
	}
	if startingPrice <= 0 {
		return Result{}, fmt.Errorf("starting price must be > 0, got %g: %w", startingPrice, econ.ErrInvalidDomain)
	}

	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return vals[order[a]] > vals[order[b]] })

	for price := startingPrice; price > 0; price -= decrement {
		for _, i := range order {
			if vals[i] >= price {
				efficiency := 0.0
				if i == vals.highest() {
					efficiency = 1
				}
				return Result{
					Mechanism:     Dutch,
					Winner:        i,
					WinningBid:    price,
					Payment:       price,
					Revenue:       price,
					WinnerSurplus: vals[i] - price,
					Efficiency:    efficiency,
					FinalPrice:    price,
				}, nil
			}
		}
	}

	return noWinner(Dutch, 0, nil), nil
}

// CompareMechanisms runs all four formats on the same valuations, with
// the Dutch clock starting comfortably above the highest valuation.
func CompareMechanisms(vals Valuations, reserve float64) ([]Result, error) {
	if err := vals.Validate(); err != nil {
		return nil, err
	}

	maxVal := vals[vals.highest()]
	start := maxVal + 10
	if start < 100 {
		start = 100
	}

	fp, err := RunFirstPrice(vals, reserve)
	if err != nil {
		return nil, err
	}
	sp, err := RunSecondPrice(vals, reserve)
	if err != nil {
		return nil, err
	}
	en, err := RunEnglish(vals, reserve, 1)
	if err != nil {
		return nil, err
	}
	du, err := RunDutch(vals, start, 1)
	if err != nil {
		return nil, err
	}
	return []Result{fp, sp, en, du}, nil
}
