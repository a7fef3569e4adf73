package domain

// Play implements C3's Play intent (spec §4.3): a normal in-turn play, or
// an out-of-turn bomb interrupt when the classified combination is a bomb.
// BombInterrupt is the same operation under a different name (spec §4.3
// describes it as "same shape as Play, but accepted out of turn") — see
// BombInterrupt below.
func (r *Round) Play(seat Seat, cards []Card, wishRank *Rank) (*ActionOutcome, *EngineError) {
	if r.Phase != PhasePlay {
		return nil, reject(ReasonWrongPhase, "round is not in play phase")
	}
	if r.DragonPending != nil {
		return nil, reject(ReasonWrongPhase, "a dragon gift is pending selection")
	}
	if !ContainsAll(r.Hands[seat], cards) {
		return nil, reject(ReasonCardsNotInHand, "seat does not hold all played cards")
	}

	leading := len(r.CurrentTrick) == 0

	if len(cards) == 1 && cards[0].Kind == KindDog {
		return r.playDog(seat, leading)
	}

	combo, cerr := Classify(cards)
	if cerr != nil {
		return nil, cerr
	}
	if combo.Kind == ComboSingle && cards[0].Kind == KindPhoenix {
		if leading {
			combo = combo.WithSingleValue(PhoenixLeadSingleValue)
		} else {
			top, _ := r.currentHighest()
			combo = combo.WithSingleValue(PhoenixSingleValue(top.Combo.Value, false))
		}
	}
	isBomb := combo.IsBomb()

	// Dog is always resolved and discarded atomically within playDog, so
	// it can never actually be sitting in CurrentTrick when this runs;
	// the check is kept because the guard is named explicitly in spec §4.3
	// and because it costs nothing to keep correct if that invariant ever
	// changes.
	if isBomb && containsCard(flattenTrick(r.CurrentTrick), Dog) {
		return nil, reject(ReasonBombForbiddenDogInTrick, "dog is present in the current trick")
	}
	if !isBomb && seat != r.CurrentSeat {
		return nil, reject(ReasonNotYourTurn, "")
	}

	if !r.mahJongPlayed && seat == r.MahJongHolder && !containsCard(cards, MahJong) {
		return nil, reject(ReasonMahJongMustBePlayedFirst, "mah jong holder's first play must include it")
	}

	if !leading {
		top, _ := r.currentHighest()
		if isBomb {
			if top.Combo.IsBomb() && !Beats(combo, top.Combo) {
				return nil, reject(ReasonDoesNotBeatCurrent, "bomb does not outrank the current bomb")
			}
		} else if !Beats(combo, top.Combo) {
			return nil, reject(ReasonDoesNotBeatCurrent, "")
		}
	}

	if leading && r.Wish.Active && handHasRank(r.Hands[seat], r.Wish.Rank) {
		if combo.Kind != ComboSingle || cards[0].Rank != r.Wish.Rank {
			return nil, reject(ReasonWishUnfulfilled, "must lead the wished rank as a single")
		}
	}

	if combo.Kind == ComboSingle && cards[0].Kind == KindMahJong && leading {
		if wishRank == nil || !validWishRank(*wishRank) {
			return nil, reject(ReasonInvalidCombination, "mah jong single lead requires a wish rank 2..A")
		}
	}

	return r.commitPlay(seat, cards, combo, leading, wishRank), nil
}

// BombInterrupt is an alias for Play: a bomb is recognized and its
// out-of-turn acceptance is governed entirely by the turn-guard bypass
// already implemented in Play. It exists as a distinct name because the
// intent API (spec §4.3) lists it separately from Play.
func (r *Round) BombInterrupt(seat Seat, cards []Card) (*ActionOutcome, *EngineError) {
	return r.Play(seat, cards, nil)
}

func (r *Round) playDog(seat Seat, leading bool) (*ActionOutcome, *EngineError) {
	if !leading {
		return nil, reject(ReasonInvalidCombination, "dog must be the sole lead card")
	}
	if seat != r.CurrentSeat {
		return nil, reject(ReasonNotYourTurn, "")
	}
	if !r.mahJongPlayed && seat == r.MahJongHolder {
		return nil, reject(ReasonMahJongMustBePlayedFirst, "mah jong holder's first play must include it")
	}
	r.Hands[seat] = RemoveCards(r.Hands[seat], []Card{Dog})
	r.FirstCardPlayed[seat] = true
	outcome := &ActionOutcome{}
	if len(r.Hands[seat]) == 0 {
		r.Out = append(r.Out, seat)
		outcome.SeatFinished = &seat
		if res := r.checkRoundEnd(); res != nil {
			outcome.RoundEnded = res
			return outcome, nil
		}
	}
	if err := r.applyDogLead(seat); err != nil {
		return nil, err
	}
	return outcome, nil
}

func (r *Round) commitPlay(seat Seat, cards []Card, combo Combination, leading bool, wishRank *Rank) *ActionOutcome {
	r.Hands[seat] = RemoveCards(r.Hands[seat], cards)
	r.CurrentTrick = append(r.CurrentTrick, Play{Seat: seat, Cards: cards, Combo: combo})
	if leading {
		// Opening a new trick discharges any pending dog priority,
		// whether or not the designated seat is the one who led —
		// an out-of-turn bomb can preempt it.
		r.LeadSeat = seat
		r.DogPriority = nil
	}
	r.Passed = [SeatCount]bool{}
	r.FirstCardPlayed[seat] = true

	outcome := &ActionOutcome{}

	if !r.mahJongPlayed && seat == r.MahJongHolder {
		r.mahJongPlayed = true
	}

	if combo.Kind == ComboSingle && cards[0].Kind == KindMahJong && leading {
		r.setWish(*wishRank)
		rank := *wishRank
		outcome.WishSet = &rank
	} else if wishSatisfiedBy(r.Wish, cards) {
		r.Wish = Wish{}
		outcome.WishCleared = true
	}

	seatFinished := false
	if len(r.Hands[seat]) == 0 {
		r.Out = append(r.Out, seat)
		seatFinished = true
		outcome.SeatFinished = &seat
		if res := r.checkRoundEnd(); res != nil {
			outcome.RoundEnded = res
			return outcome
		}
	}

	others := r.remainingActiveCount()
	if !seatFinished {
		others--
	}
	if others == 0 {
		r.winTrick(seat, outcome)
		return outcome
	}

	next, ok := r.nextActive(seat.Next(), false)
	if !ok {
		r.Phase = PhaseRoundEnded
		return outcome
	}
	r.CurrentSeat = next
	return outcome
}

// Pass implements C3's Pass intent (spec §4.3).
func (r *Round) Pass(seat Seat) (*ActionOutcome, *EngineError) {
	if r.Phase != PhasePlay {
		return nil, reject(ReasonWrongPhase, "round is not in play phase")
	}
	if r.DragonPending != nil {
		return nil, reject(ReasonWrongPhase, "a dragon gift is pending selection")
	}
	if seat != r.CurrentSeat {
		return nil, reject(ReasonNotYourTurn, "")
	}
	if r.hasLeadPriority(seat) {
		return nil, reject(ReasonMustLead, "seat holds priority to lead and may not pass")
	}
	if r.Wish.Active && handHasRank(r.Hands[seat], r.Wish.Rank) {
		return nil, reject(ReasonWishUnfulfilled, "seat holds the wished rank and may not pass")
	}

	r.Passed[seat] = true
	outcome := &ActionOutcome{}

	top, ok := r.currentHighest()
	if !ok {
		// Nothing to pass against; should not happen once hasLeadPriority
		// above is honored, but fail safe rather than silently advancing.
		return nil, reject(ReasonEngineInvariant, "pass with no current trick and no lead priority")
	}

	allOthersPassed := true
	for s := Seat(0); s < SeatCount; s++ {
		if s == top.Seat || r.IsOut(s) || !r.HasCards(s) {
			continue
		}
		if !r.Passed[s] {
			allOthersPassed = false
			break
		}
	}
	if allOthersPassed {
		r.winTrick(top.Seat, outcome)
		return outcome, nil
	}

	next, ok := r.nextActive(seat.Next(), true)
	if !ok {
		return nil, reject(ReasonEngineInvariant, "no active unpassed seat left to advance to")
	}
	r.CurrentSeat = next
	return outcome, nil
}

// hasLeadPriority reports whether seat holds a non-transferable obligation
// to play rather than pass (spec §4.3 guard 4): opening a new trick or
// holding dog priority. The wished-rank obligation is checked separately
// in Pass.
func (r *Round) hasLeadPriority(seat Seat) bool {
	if len(r.CurrentTrick) == 0 && r.LeadSeat == seat {
		return true
	}
	if r.DogPriority != nil && *r.DogPriority == seat {
		return true
	}
	return false
}

// winTrick closes the current trick, awarding its cards and points to
// winner's stack (or stashing them in DragonPending if the winning play
// was the Dragon single). The next trick's lead goes to winner, unless
// winner has already gone out, in which case lead passes to the next
// active seat in rotation.
func (r *Round) winTrick(winner Seat, outcome *ActionOutcome) {
	top, _ := r.currentHighest()
	cards, points := flattenTrickWithPoints(r.CurrentTrick)
	isDragonWin := top.Seat == winner && len(top.Cards) == 1 && top.Cards[0].Kind == KindDragon

	r.CurrentTrick = nil
	r.Passed = [SeatCount]bool{}

	lead := winner
	if r.IsOut(winner) {
		if next, ok := r.nextActive(winner.Next(), false); ok {
			lead = next
		}
	}
	r.LeadSeat = lead
	r.CurrentSeat = lead

	if isDragonWin {
		r.applyDragonWin(winner, cards, points)
		outcome.DragonGiftPending = true
	} else {
		r.Stacks[winner].Cards = append(r.Stacks[winner].Cards, cards...)
		r.Stacks[winner].CardPoints += points
	}
	w := winner
	outcome.TrickWon = &w
}

// SelectDragonRecipient implements the Dragon-gift resolution (spec §4.4):
// only the giver may call it, only while a gift is pending, and only
// naming an opponent.
func (r *Round) SelectDragonRecipient(seat Seat, recipient Seat) (*ActionOutcome, *EngineError) {
	if r.DragonPending == nil {
		return nil, reject(ReasonWrongPhase, "no dragon gift is pending")
	}
	if seat != r.DragonPending.Giver {
		return nil, reject(ReasonDragonMustChooseOpponent, "only the giver may select a recipient")
	}
	if recipient.Team() == seat.Team() {
		return nil, reject(ReasonDragonRecipientMustBeOpponent, "")
	}
	r.resolveDragonGift(recipient)
	return &ActionOutcome{}, nil
}

func containsCard(cards []Card, target Card) bool {
	for _, c := range cards {
		if c == target {
			return true
		}
	}
	return false
}

func flattenTrick(trick []Play) []Card {
	var out []Card
	for _, p := range trick {
		out = append(out, p.Cards...)
	}
	return out
}

func flattenTrickWithPoints(trick []Play) ([]Card, int) {
	var cards []Card
	points := 0
	for _, p := range trick {
		cards = append(cards, p.Cards...)
		for _, c := range p.Cards {
			points += c.Points()
		}
	}
	return cards, points
}

func validWishRank(rank Rank) bool {
	return rank >= Rank2 && rank <= RankA
}
