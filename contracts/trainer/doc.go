/*
Package trainer contains implementation of Trainer contract.

Trainer contract tracks prediction exercises. A registered trainer publishes
an exercise identified by its content identifier and timeout, traders submit
their predictions (validations) until the exercise is sealed, then the trainer
reveals the outcome and checks every validation. Each check grades the
prediction, updates the trader performance and appends an entry to the
trader's history.

Exercises and traders are stored by addresses derived from their seeds, so
clients can compute them without contract calls (see addressing package).

# Contract notifications

NewTrader notification. This notification is produced when a new trader is
created.

	NewTrader:
	  - name: trader
	    type: Hash160
	  - name: user
	    type: Hash160
	  - name: name
	    type: String
	  - name: timestamp
	    type: Integer

NewExercise notification. This notification is produced when a trainer
publishes a new exercise.

	NewExercise:
	  - name: exercise
	    type: Hash160
	  - name: cid
	    type: String
	  - name: timeout
	    type: Integer
	  - name: timestamp
	    type: Integer

NewValidation notification. This notification is produced when a trader
submits a validation. Index is the position of the validation in the exercise
at the moment of submission.

	NewValidation:
	  - name: exercise
	    type: Hash160
	  - name: user
	    type: Hash160
	  - name: index
	    type: Integer
	  - name: value
	    type: Integer
	  - name: timestamp
	    type: Integer

ExerciseSealed notification. This notification is produced when the exercise
stops accepting validations: its capacity is reached or a validation arrives
after the timeout.

	ExerciseSealed:
	  - name: exercise
	    type: Hash160
	  - name: timestamp
	    type: Integer

ValidationChecked notification. This notification is produced when a
validation is graded. Performance is the new trader performance.

	ValidationChecked:
	  - name: exercise
	    type: Hash160
	  - name: trader
	    type: Hash160
	  - name: index
	    type: Integer
	  - name: performance
	    type: Integer

ExerciseValidated notification. This notification is produced when the last
validation of the exercise is checked and the exercise is deleted.

	ExerciseValidated:
	  - name: exercise
	    type: Hash160
	  - name: timestamp
	    type: Integer

ExerciseClosed notification. This notification is produced when the trainer
closes the exercise.

	ExerciseClosed:
	  - name: exercise
	    type: Hash160
	  - name: timestamp
	    type: Integer

# Contract storage model

Key-value storage has the following format:
  - 'g' -> std.Serialize(Governance)
    governance authority and minimal validations capacity of new exercises
  - 'n' + interop.Hash160 -> []byte{1}
    registered trainers
  - 't' + interop.Hash160 -> std.Serialize(Trader)
    traders by their addresses
  - 'e' + interop.Hash160 -> std.Serialize(Exercise)
    exercises by their addresses, validations are stored inside
  - 'c' + interop.Hash160 -> std.Serialize(ring.Cursor)
    history counters of the trader
  - 'h' + interop.Hash160 + byte -> std.Serialize(HistoryEntry)
    trader history slots
*/
package trainer
