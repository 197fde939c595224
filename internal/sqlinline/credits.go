package sqlinline

// QEnsureAccount inserts the account with its signup credits on first sight
// and returns the current row either way. It returns no row when a concurrent
// insert commits after the statement snapshot.
const QEnsureAccount = `--sql c10c9ba6-2fcd-4a28-bd8c-8bd95d94f06f
with inserted as (
    insert into accounts (id, email, credits, created_at, updated_at)
    values ($1::text, $2::text, $3::int, now(), now())
    on conflict (id) do nothing
    returning id, email, credits, free_credits_used, last_free_credit_at, created_at, updated_at
),
ledger as (
    insert into credit_transactions (id, account_id, delta, reason, reference, created_at)
    select $4::uuid, id, $3::int, 'signup', '', now()
    from inserted
    where $3::int > 0
)
select id, email, credits, free_credits_used, last_free_credit_at, created_at, updated_at from inserted
union all
select id, email, credits, free_credits_used, last_free_credit_at, created_at, updated_at
from accounts
where id = $1::text and not exists (select 1 from inserted);
`

const QGetAccount = `--sql 83fa6c63-d9da-4450-9c4a-2ca65fe3dfa7
select id, email, credits, free_credits_used, last_free_credit_at, created_at, updated_at
from accounts
where id = $1::text;
`

// QDeductCredits returns no row when the balance is too low.
const QDeductCredits = `--sql 8be9632f-3046-47e3-ac65-57595e227021
with updated as (
    update accounts
    set credits = credits - $2::int,
        updated_at = now()
    where id = $1::text and credits >= $2::int
    returning id, credits
),
ledger as (
    insert into credit_transactions (id, account_id, delta, reason, reference, created_at)
    select $3::uuid, id, -$2::int, $4::text, $5::text, now()
    from updated
)
select credits from updated;
`

const QAddCredits = `--sql 31631945-cdbb-4c59-857f-9d2922c61552
with updated as (
    update accounts
    set credits = credits + $2::int,
        updated_at = now()
    where id = $1::text
    returning id, credits
),
ledger as (
    insert into credit_transactions (id, account_id, delta, reason, reference, created_at)
    select $3::uuid, id, $2::int, $4::text, $5::text, now()
    from updated
)
select credits from updated;
`

// QGrantWeeklyCredit returns no row when the last grant is under a week old.
const QGrantWeeklyCredit = `--sql bc6e5ac9-0476-490c-979d-0cd227b6e542
with updated as (
    update accounts
    set credits = credits + 1,
        free_credits_used = free_credits_used + 1,
        last_free_credit_at = now(),
        updated_at = now()
    where id = $1::text
      and (last_free_credit_at is null or last_free_credit_at <= now() - interval '7 days')
    returning id, credits
),
ledger as (
    insert into credit_transactions (id, account_id, delta, reason, reference, created_at)
    select $2::uuid, id, 1, 'weekly_free', '', now()
    from updated
)
select credits from updated;
`

const QListCreditTransactions = `--sql 3a044353-6160-4fd1-b435-04c9560db064
select id::text, account_id, delta, reason, reference, created_at
from credit_transactions
where account_id = $1::text
order by created_at desc
limit $2::int;
`
