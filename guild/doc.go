/*
Package guild contains implementation of Guild contract deployed in Neo
sidechain.

Guild is a treasury-funded membership contract. A single master account
controls the guild texts (manifesto, mandate) and the role slots, a single
member account reads the mandate and submits proposals. Joining the guild
and submitting a proposal require an exact GAS tribute which is forwarded
to a fixed treasury account set at deploy time.

Tribute-paid operations are not invoked directly: the payer transfers GAS
to the contract address with the operation name in the transfer data
argument (["join"] or ["proposal", text]). A tribute that differs from the
required amount aborts the whole transfer, so no funds move on failure.

The member slot holds at most one account. A join overwrites the slot
unconditionally: the previous member is displaced without an error and
keeps its reputation entry. The master role, once renounced, can never be
re-established.

# Contract notifications

Every successful mutating operation produces exactly one notification
carrying the old and the new value of the changed field. Absent role slots
are represented by empty byte strings.

MembershipChanged notification. Produced on join and on member access
transfer.

	MembershipChanged:
	  - name: previous
	    type: Hash160
	  - name: current
	    type: Hash160

MasterChanged notification. Produced on master role transfer and renounce
(the current value is empty after renounce).

	MasterChanged:
	  - name: previous
	    type: Hash160
	  - name: current
	    type: Hash160

ProposalChanged notification. Produced when the member submits a proposal.

	ProposalChanged:
	  - name: previous
	    type: String
	  - name: current
	    type: String

MandateChanged notification. Produced when the master overwrites the
mandate.

	MandateChanged:
	  - name: previous
	    type: String
	  - name: current
	    type: String

ManifestoChanged notification. Produced when the master overwrites the
manifesto.

	ManifestoChanged:
	  - name: previous
	    type: String
	  - name: current
	    type: String
*/
package guild
